package cache

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"

	"github.com/markkmetz/scos2000/internal/mib"
)

// Write persists ix under dir, stamped with the dataset fingerprint.
// Artifacts are staged into a sibling temp directory and swapped in
// atomically under a file lock, so concurrent s2k processes never observe
// a half-written cache.
func Write(dir, fingerprint string, ix *mib.Index) error {
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("cannot create cache parent: %w", err)
	}

	lock := flock.New(dir + lockFile)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("cannot lock cache %s: %w", dir, err)
	}
	defer lock.Unlock()

	stage := dir + ".tmp"
	_ = os.RemoveAll(stage)
	if err := os.MkdirAll(stage, 0o755); err != nil {
		return fmt.Errorf("cannot create staging dir %s: %w", stage, err)
	}
	defer os.RemoveAll(stage)

	if err := writeArtifacts(stage, fingerprint, ix); err != nil {
		return err
	}
	return swap(stage, dir)
}

func writeArtifacts(dir, fingerprint string, ix *mib.Index) error {
	manifest := Manifest{
		CacheVersion: CacheVersion,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Fingerprint:  fingerprint,
	}
	mb, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}

	commands := ix.Commands()
	sort.Slice(commands, func(i, j int) bool { return commands[i].ID < commands[j].ID })
	if err := writeJSONL(filepath.Join(dir, commandsFile), len(commands), func(i int) any { return commands[i] }); err != nil {
		return err
	}

	sids := make([]string, 0, len(ix.TmBySID))
	for sid := range ix.TmBySID {
		sids = append(sids, sid)
	}
	sort.Strings(sids)
	if err := writeJSONL(filepath.Join(dir, telemetryFile), len(sids), func(i int) any { return ix.TmBySID[sids[i]] }); err != nil {
		return err
	}

	// TcByName is not derivable from the command list alone: a name can
	// collide across IDs and the last writer won. Persist the mapping.
	names := make(map[string]string, len(ix.TcByName))
	for name, tc := range ix.TcByName {
		names[name] = tc.ID
	}
	nb, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, namesFile), nb, 0o644); err != nil {
		return fmt.Errorf("cannot write name index: %w", err)
	}
	return nil
}

func writeJSONL(path string, n int, row func(i int) any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		line, err := json.Marshal(row(i))
		if err != nil {
			_ = f.Close()
			return err
		}
		if _, err := bw.Write(line); err != nil {
			_ = f.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// swap replaces destDir with srcDir by renaming, keeping a best-effort
// backup for rollback.
func swap(srcDir, destDir string) error {
	backup := destDir + ".bak"
	_ = os.RemoveAll(backup)
	if _, err := os.Stat(destDir); err == nil {
		if err := os.Rename(destDir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		if _, stErr := os.Stat(backup); stErr == nil {
			_ = os.Rename(backup, destDir)
		}
		return err
	}
	_ = os.RemoveAll(backup)
	return nil
}
