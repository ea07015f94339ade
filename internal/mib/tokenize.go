package mib

import "strings"

// SplitFields splits a raw MIB table line into its tab-separated fields,
// trimming surrounding whitespace from each. It performs no validation;
// short rows simply yield fewer fields.
func SplitFields(line string) []string {
	parts := strings.Split(line, "\t")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// IsSkippable reports whether a line is a comment or blank and must be
// ignored by every table parser: empty after trimming, or starting with #.
func IsSkippable(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || strings.HasPrefix(t, "#")
}

// FirstToken returns the first whitespace-delimited token of line, or ""
// for blank/whitespace-only lines. Procedure files reference telecommands
// by leading token, so this is what hover/completion layers key on.
func FirstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// col returns the n-th field of a tokenized row, or "" when the row is too
// short. Optional columns are absent, not errors.
func col(fields []string, n int) string {
	if n < 0 || n >= len(fields) {
		return ""
	}
	return fields[n]
}
