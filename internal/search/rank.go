package search

import (
	"sort"
	"strings"

	"github.com/markkmetz/scos2000/internal/mib"
)

// Relevance tiers. Identifier matches outrank parameter matches, which
// outrank description matches; scoring is per entry, never global.
const (
	ScoreNone        = 0
	ScoreDescription = 1
	ScoreParam       = 2
	ScoreIdentifier  = 3
)

// BuildEntryIndex builds the searchable projection of the given commands,
// sorted by command ID for deterministic iteration. It reads nothing but
// the entries themselves.
func BuildEntryIndex(commands []*mib.TcEntry) []EntryIndex {
	out := make([]EntryIndex, 0, len(commands))
	for _, tc := range commands {
		e := EntryIndex{
			Entry:       tc,
			ID:          strings.ToLower(tc.ID),
			Name:        strings.ToLower(tc.Name),
			Description: strings.ToLower(tc.Description),
		}
		for _, p := range tc.Params {
			e.ParamNames = append(e.ParamNames, strings.ToLower(p.Name))
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entry.ID < out[j].Entry.ID })
	return out
}

// Rank scores every indexed entry against query and returns the top
// results, best first. Matching is case-insensitive substring containment.
// An empty query is "list everything": every entry comes back with score
// zero. A non-empty query drops non-matching entries. Ties are broken by
// ascending command ID; the result is truncated to limit (limit 0 yields
// nothing).
func Rank(entries []EntryIndex, query string, limit int) []Result {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Result
	for _, e := range entries {
		score := scoreEntry(e, q)
		if q != "" && score == ScoreNone {
			continue
		}
		out = append(out, Result{Entry: e.Entry, Score: score})
	}

	SortResults(out)

	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// scoreEntry computes the relevance tier of one entry for a lower-cased
// query. Tiers are exclusive: a parameter match is only reported when no
// identifier matched, a description match only when neither did.
func scoreEntry(e EntryIndex, q string) int {
	if q == "" {
		return ScoreNone
	}
	if strings.Contains(e.ID, q) || strings.Contains(e.Name, q) {
		return ScoreIdentifier
	}
	for _, name := range e.ParamNames {
		if name != "" && strings.Contains(name, q) {
			return ScoreParam
		}
	}
	if strings.Contains(e.Description, q) {
		return ScoreDescription
	}
	return ScoreNone
}
