// Package search ranks MIB telecommands against free-text queries.
package search

import "github.com/markkmetz/scos2000/internal/mib"

// EntryIndex is the precomputed searchable projection of one telecommand:
// every matchable field lower-cased once, so repeated queries stay cheap.
// It is read-only; rebuild it whenever the underlying index changes.
type EntryIndex struct {
	Entry       *mib.TcEntry
	ID          string
	Name        string
	Description string
	ParamNames  []string
}

// Result is one ranked telecommand.
type Result struct {
	Entry *mib.TcEntry
	Score int
}
