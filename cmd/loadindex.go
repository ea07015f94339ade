package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/markkmetz/scos2000/internal/cache"
	"github.com/markkmetz/scos2000/internal/config"
	"github.com/markkmetz/scos2000/internal/dataset"
	"github.com/markkmetz/scos2000/internal/mib"
)

// resolveDatasets returns the dataset roots for this invocation: the -d
// flags when given, the configured datasets otherwise.
func resolveDatasets(cfg *config.Config) ([]string, error) {
	roots := flagDatasets
	if len(roots) == 0 {
		roots = cfg.Datasets
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no MIB datasets configured\n" +
			"  Pass one with -d <dir>, or add datasets to ~/.s2k/config.yaml.")
	}
	return roots, nil
}

// loadIndex returns the MIB index for the resolved datasets, from the
// on-disk cache when its fingerprint still matches, rebuilding from the
// table files otherwise. force skips the cache read. Cache write failures
// are logged and ignored — a cache is a convenience, not a requirement.
func loadIndex(cfg *config.Config, force bool) (*mib.Index, error) {
	roots, err := resolveDatasets(cfg)
	if err != nil {
		return nil, err
	}

	files, err := dataset.DiscoverAll(roots)
	if err != nil {
		return nil, err
	}
	if files.Empty() {
		return nil, fmt.Errorf("no MIB table files found under %v", roots)
	}
	fingerprint, err := dataset.Fingerprint(files.All())
	if err != nil {
		return nil, err
	}

	cacheBase, err := config.CacheDir()
	if err != nil {
		return nil, err
	}
	cacheDir := cache.DirFor(cacheBase, roots)

	if !force {
		ix, cerr := cache.Load(cacheDir, fingerprint)
		if cerr == nil {
			log.Debug("index loaded from cache", "dir", cacheDir)
			return ix, nil
		}
		log.Debug("cache unusable, rebuilding", "reason", cerr)
	}

	in, err := dataset.ReadAll(files)
	if err != nil {
		return nil, err
	}
	ix := mib.Build(in, mib.BuildOptions{TxpCommandSide: cfg.TxpCommandSide})
	log.Debug("index built",
		"commands", len(ix.TcByID),
		"telemetry", len(ix.TmBySID),
		"files", len(files.All()))

	if err := cache.Write(cacheDir, fingerprint, ix); err != nil {
		log.Warn("cannot write index cache", "dir", cacheDir, "err", err)
	}
	return ix, nil
}
