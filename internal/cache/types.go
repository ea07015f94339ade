// Package cache persists a built MIB index on disk so repeated CLI
// invocations skip re-parsing unchanged datasets. Artifacts live in one
// directory: a manifest, one JSONL file per entry kind, and a name-to-ID
// map. Invalidation is by dataset fingerprint; a stale or unreadable cache
// is simply rebuilt.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// CacheVersion is bumped whenever the artifact layout changes; older
// caches are discarded on load.
const CacheVersion = 1

// Artifact file names inside a cache directory.
const (
	manifestFile  = "manifest.json"
	commandsFile  = "commands.jsonl"
	telemetryFile = "telemetry.jsonl"
	namesFile     = "names.json"
	lockFile      = ".lock"
)

// DirFor returns the cache directory for a dataset root set under base.
// Distinct root sets get distinct directories; validity within one is
// checked against the manifest fingerprint, not the directory name.
func DirFor(base string, roots []string) string {
	h := sha256.Sum256([]byte(strings.Join(roots, "\x00")))
	return filepath.Join(base, hex.EncodeToString(h[:])[:16])
}

// Manifest describes one cached index and what it was built from.
type Manifest struct {
	CacheVersion int    `json:"cache_version"`
	CreatedAt    string `json:"created_at"`
	Fingerprint  string `json:"fingerprint"`
}
