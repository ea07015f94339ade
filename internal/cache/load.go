package cache

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/markkmetz/scos2000/internal/mib"
)

// Load reads a cached index from dir and validates it against the current
// dataset fingerprint. Any mismatch or decode failure returns an error;
// callers treat every error the same way, by rebuilding from source.
func Load(dir, fingerprint string) (*mib.Index, error) {
	mb, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("cannot read cache manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(mb, &m); err != nil {
		return nil, fmt.Errorf("invalid cache manifest: %w", err)
	}
	if m.CacheVersion != CacheVersion {
		return nil, fmt.Errorf("cache version mismatch: got %d want %d", m.CacheVersion, CacheVersion)
	}
	if m.Fingerprint != fingerprint {
		return nil, fmt.Errorf("dataset changed since cache was built")
	}

	ix := &mib.Index{
		TcByID:   make(map[string]*mib.TcEntry),
		TcByName: make(map[string]*mib.TcEntry),
		TmBySID:  make(map[string]*mib.TelemetryEntry),
	}

	err = readJSONL(filepath.Join(dir, commandsFile), func(line []byte) error {
		var tc mib.TcEntry
		if err := json.Unmarshal(line, &tc); err != nil {
			return err
		}
		ix.TcByID[tc.ID] = &tc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid command cache: %w", err)
	}

	err = readJSONL(filepath.Join(dir, telemetryFile), func(line []byte) error {
		var tm mib.TelemetryEntry
		if err := json.Unmarshal(line, &tm); err != nil {
			return err
		}
		ix.TmBySID[tm.SID] = &tm
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid telemetry cache: %w", err)
	}

	nb, err := os.ReadFile(filepath.Join(dir, namesFile))
	if err != nil {
		return nil, fmt.Errorf("cannot read name index: %w", err)
	}
	names := map[string]string{}
	if err := json.Unmarshal(nb, &names); err != nil {
		return nil, fmt.Errorf("invalid name index: %w", err)
	}
	for name, id := range names {
		tc, ok := ix.TcByID[id]
		if !ok {
			return nil, fmt.Errorf("name index references unknown command %s", id)
		}
		ix.TcByName[name] = tc
	}

	return ix, nil
}

func readJSONL(path string, row func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := row(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
