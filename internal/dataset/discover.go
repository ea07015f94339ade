// Package dataset locates SCOS-2000 MIB table files on disk and
// materializes them into line sets for the index builder. It is the only
// place that touches the filesystem; the mib package itself never does.
package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/markkmetz/scos2000/internal/mib"
)

// Files holds the discovered table file paths, one slice per table kind,
// each sorted lexically so merge order is deterministic.
type Files struct {
	CCF []string
	CDF []string
	PID []string
	PLF []string
	PCF []string
	CVE []string
	CVP []string
	TXP []string
}

// All returns every discovered path in kind-then-lexical order.
func (f *Files) All() []string {
	var out []string
	for _, kind := range [][]string{f.CCF, f.CDF, f.PID, f.PLF, f.PCF, f.CVE, f.CVP, f.TXP} {
		out = append(out, kind...)
	}
	return out
}

// Empty reports whether no table file of any kind was found.
func (f *Files) Empty() bool {
	return len(f.All()) == 0
}

// Discover walks root and collects MIB table files by basename: a file
// named after a table kind (ccf, CDF.dat, ...) belongs to that kind.
// Partial datasets are normal; missing kinds are not an error.
func Discover(root string) (*Files, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot stat dataset directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset path is not a directory: %s", root)
	}

	files := &Files{}
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch kindOf(d.Name()) {
		case "ccf":
			files.CCF = append(files.CCF, path)
		case "cdf":
			files.CDF = append(files.CDF, path)
		case "pid":
			files.PID = append(files.PID, path)
		case "plf":
			files.PLF = append(files.PLF, path)
		case "pcf":
			files.PCF = append(files.PCF, path)
		case "cve":
			files.CVE = append(files.CVE, path)
		case "cvp":
			files.CVP = append(files.CVP, path)
		case "txp":
			files.TXP = append(files.TXP, path)
		}
		return nil
	}
	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, fmt.Errorf("cannot scan dataset %s: %w", root, err)
	}

	for _, kind := range [][]string{files.CCF, files.CDF, files.PID, files.PLF, files.PCF, files.CVE, files.CVP, files.TXP} {
		sort.Strings(kind)
	}
	return files, nil
}

// kindOf maps a file basename to its table kind, or "" for files that are
// not MIB tables. SCOS-2000 exports name tables after their kind with an
// optional .dat suffix, in either case.
func kindOf(name string) string {
	base := strings.ToLower(name)
	ext := filepath.Ext(base)
	if ext != "" && ext != ".dat" {
		return ""
	}
	base = strings.TrimSuffix(base, ext)
	switch base {
	case "ccf", "cdf", "pid", "plf", "pcf", "cve", "cvp", "txp":
		return base
	}
	return ""
}

// DiscoverAll discovers table files under each root and merges them,
// roots in the given order. Later roots' files come after earlier ones,
// so later datasets merge over earlier ones at build time.
func DiscoverAll(roots []string) (*Files, error) {
	all := &Files{}
	for _, root := range roots {
		files, err := Discover(root)
		if err != nil {
			return nil, err
		}
		all.CCF = append(all.CCF, files.CCF...)
		all.CDF = append(all.CDF, files.CDF...)
		all.PID = append(all.PID, files.PID...)
		all.PLF = append(all.PLF, files.PLF...)
		all.PCF = append(all.PCF, files.PCF...)
		all.CVE = append(all.CVE, files.CVE...)
		all.CVP = append(all.CVP, files.CVP...)
		all.TXP = append(all.TXP, files.TXP...)
	}
	return all, nil
}

// ReadAll materializes every discovered file into builder inputs.
func ReadAll(files *Files) (mib.Inputs, error) {
	var in mib.Inputs
	read := func(paths []string, dst *[]mib.TableFile) error {
		for _, p := range paths {
			tf, err := ReadTable(p)
			if err != nil {
				return err
			}
			*dst = append(*dst, tf)
		}
		return nil
	}
	for _, step := range []struct {
		paths []string
		dst   *[]mib.TableFile
	}{
		{files.CCF, &in.CCF},
		{files.CDF, &in.CDF},
		{files.PID, &in.PID},
		{files.PLF, &in.PLF},
		{files.PCF, &in.PCF},
		{files.CVE, &in.CVE},
		{files.CVP, &in.CVP},
		{files.TXP, &in.TXP},
	} {
		if err := read(step.paths, step.dst); err != nil {
			return mib.Inputs{}, err
		}
	}
	return in, nil
}

// Load is DiscoverAll followed by ReadAll.
func Load(roots []string) (mib.Inputs, *Files, error) {
	files, err := DiscoverAll(roots)
	if err != nil {
		return mib.Inputs{}, nil, err
	}
	in, err := ReadAll(files)
	if err != nil {
		return mib.Inputs{}, nil, err
	}
	return in, files, nil
}
