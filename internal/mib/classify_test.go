package mib

import "testing"

func TestIsRequiredParam(t *testing.T) {
	cases := []struct {
		name string
		kind string
		want bool
	}{
		{"MODE", "E", true},
		{"MODE", "", true},
		{"MODE", "A", false},
		{"MODE", "a", false},
		{"", "E", false},
		{"", "", false},
		{"filler", "E", false},
		{"FILLER", "", false},
		{"FiLlEr", "F", false},
		{"FILLER_2", "E", true}, // only the exact word is filler
	}
	for _, c := range cases {
		if got := IsRequiredParam(c.name, c.kind); got != c.want {
			t.Errorf("IsRequiredParam(%q, %q) = %v, want %v", c.name, c.kind, got, c.want)
		}
	}
}

func TestSplitParams_PreservesOrder(t *testing.T) {
	tc := &TcEntry{ID: "TC_A", Params: []*ParamEntry{
		{Name: "MODE", Kind: "E"},
		{Name: "FILLER"},
		{Name: "TARGET"},
		{Name: "CRC", Kind: "A"},
		{Name: "AXIS", Kind: "F"},
	}}
	required, optional := SplitParams(tc)
	if len(required) != 3 || required[0].Name != "MODE" || required[1].Name != "TARGET" || required[2].Name != "AXIS" {
		t.Fatalf("unexpected required set: %+v", required)
	}
	if len(optional) != 2 || optional[0].Name != "FILLER" || optional[1].Name != "CRC" {
		t.Fatalf("unexpected optional set: %+v", optional)
	}
}

func TestSnippet(t *testing.T) {
	tc := &TcEntry{ID: "TC_A", Name: "DEPLOY", Params: []*ParamEntry{
		{Name: "MODE", Kind: "E"},
		{Name: "FILLER"},
		{Name: "TARGET"},
	}}
	if got := Snippet(tc); got != "DEPLOY ${1:MODE} ${2:TARGET}" {
		t.Fatalf("unexpected snippet: %q", got)
	}

	unnamed := &TcEntry{ID: "TC_B"}
	if got := Snippet(unnamed); got != "TC_B" {
		t.Fatalf("unexpected snippet for unnamed command: %q", got)
	}
}
