package cmd

import (
	"testing"

	"github.com/markkmetz/scos2000/internal/mib"
	"github.com/markkmetz/scos2000/internal/search"
)

func TestEnumSummary(t *testing.T) {
	if got := enumSummary(&mib.ParamEntry{}); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
	p := &mib.ParamEntry{Enumerations: []string{"OFF", "ON"}}
	if got := enumSummary(p); got != "{OFF, ON}" {
		t.Fatalf("unexpected summary: %q", got)
	}
	p = &mib.ParamEntry{Enumerations: []string{"A", "B", "C", "D", "E", "F"}}
	if got := enumSummary(p); got != "{A, B, C, D, +2 more}" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestTierLabel(t *testing.T) {
	cases := map[int]string{
		search.ScoreIdentifier:  "id/name",
		search.ScoreParam:       "param",
		search.ScoreDescription: "descr",
		search.ScoreNone:        "-",
	}
	for score, want := range cases {
		if got := tierLabel(score); got != want {
			t.Errorf("tierLabel(%d) = %q, want %q", score, got, want)
		}
	}
}
