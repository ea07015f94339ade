package mib

import (
	"fmt"
	"strings"
)

// IsRequiredParam reports whether a command parameter must be supplied by
// the operator. Unnamed and filler parameters are never required; a
// parameter with no kind code is assumed required; kind A (automatic)
// parameters are filled in by the ground system. Total over all inputs.
func IsRequiredParam(name, kind string) bool {
	if name == "" || strings.EqualFold(name, "filler") {
		return false
	}
	if kind == "" {
		return true
	}
	return strings.ToUpper(kind) != "A"
}

// SplitParams partitions a command's parameters into required and optional
// sets, preserving insertion order within each.
func SplitParams(tc *TcEntry) (required, optional []*ParamEntry) {
	for _, p := range tc.Params {
		if IsRequiredParam(p.Name, p.Kind) {
			required = append(required, p)
		} else {
			optional = append(optional, p)
		}
	}
	return required, optional
}

// Snippet renders a completion template for a command: the command name
// (ID when unnamed) followed by one numbered placeholder slot per required
// parameter, e.g. "DEPLOY ${1:MODE} ${2:TARGET}".
func Snippet(tc *TcEntry) string {
	var b strings.Builder
	if tc.Name != "" {
		b.WriteString(tc.Name)
	} else {
		b.WriteString(tc.ID)
	}
	required, _ := SplitParams(tc)
	for i, p := range required {
		fmt.Fprintf(&b, " ${%d:%s}", i+1, p.Name)
	}
	return b.String()
}
