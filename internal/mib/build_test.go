package mib

import (
	"reflect"
	"testing"
)

func tf(source string, lines ...string) TableFile {
	return TableFile{Source: source, Lines: lines}
}

func TestBuild_CCFRowCounting(t *testing.T) {
	in := Inputs{CCF: []TableFile{tf("ccf.dat",
		"# command definitions",
		"TC_A\tDEPLOY\tDeploy solar array",
		"",
		"\tNO_ID\tmissing key column",
		"TC_B\tRESET\tReboot payload",
	)}}
	ix := Build(in, BuildOptions{})

	if len(ix.TcByID) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(ix.TcByID))
	}
	a := ix.TcByID["TC_A"]
	if a == nil {
		t.Fatal("TC_A not indexed")
	}
	if a.Name != "DEPLOY" || a.Description != "Deploy solar array" {
		t.Fatalf("unexpected TC_A fields: %+v", a)
	}
	// Comments and blanks still count toward line numbers.
	if a.SourceLine != 2 {
		t.Fatalf("TC_A source line = %d, want 2", a.SourceLine)
	}
	if b := ix.TcByID["TC_B"]; b.SourceLine != 5 {
		t.Fatalf("TC_B source line = %d, want 5", b.SourceLine)
	}
	if a.SourcePath != "ccf.dat" {
		t.Fatalf("unexpected source path: %q", a.SourcePath)
	}
}

func TestBuild_CCFOptionalColumns(t *testing.T) {
	in := Inputs{CCF: []TableFile{tf("ccf.dat",
		"TC_A\tDEPLOY\tdesc\tx\ty\tHDR1\t3\t1\t100",
	)}}
	tc := Build(in, BuildOptions{}).TcByID["TC_A"]
	if tc.Header != "HDR1" || tc.ServiceType != "3" || tc.SubService != "1" || tc.APID != "100" {
		t.Fatalf("unexpected optional columns: %+v", tc)
	}
}

func TestBuild_RoundTripCommandParams(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{tf("ccf.dat", "TC_A\tDEPLOY")},
		CDF: []TableFile{tf("cdf.dat",
			"TC_A\tE\tMODE\t16\t0\t\tP0001",
			"TC_A\tF\tTARGET\t32\t16\t\tP0002",
			"TC_A\tA\tCHECKSUM\t8\t48\t\tP0003",
		)},
	}
	tc := Build(in, BuildOptions{}).TcByID["TC_A"]
	if len(tc.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(tc.Params))
	}
	names := []string{tc.Params[0].Name, tc.Params[1].Name, tc.Params[2].Name}
	if !reflect.DeepEqual(names, []string{"MODE", "TARGET", "CHECKSUM"}) {
		t.Fatalf("param order wrong: %q", names)
	}
	p := tc.Params[0]
	if p.Kind != "E" || p.BitLength != "16" || p.BitOffset != "0" || p.ParamID != "P0001" {
		t.Fatalf("unexpected param fields: %+v", p)
	}
	if len(p.Raw) != 7 || p.Raw[2] != "MODE" {
		t.Fatalf("raw row not preserved: %q", p.Raw)
	}
}

func TestBuild_CDFOrderAcrossFiles(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{tf("ccf.dat", "TC_A\tDEPLOY")},
		CDF: []TableFile{
			tf("cdf1.dat", "TC_A\t\tP1", "TC_A\t\tP2"),
			tf("cdf2.dat", "TC_A\t\tP3"),
		},
	}
	tc := Build(in, BuildOptions{}).TcByID["TC_A"]
	var names []string
	for _, p := range tc.Params {
		names = append(names, p.Name)
	}
	if !reflect.DeepEqual(names, []string{"P1", "P2", "P3"}) {
		t.Fatalf("file-then-row order not preserved: %q", names)
	}
}

func TestBuild_ForeignKeyMissesDropped(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{tf("ccf.dat", "TC_A\tDEPLOY")},
		CDF: []TableFile{tf("cdf.dat", "TC_MISSING\t\tMODE")},
		PID: []TableFile{tf("pid.dat", "3\t25\t\t\t\tSID_1\tHousekeeping")},
		PLF: []TableFile{tf("plf.dat", "P0001\tSID_MISSING")},
	}
	ix := Build(in, BuildOptions{})
	if len(ix.TcByID["TC_A"].Params) != 0 {
		t.Fatal("CDF row with unknown tcId must be dropped")
	}
	if len(ix.TmBySID["SID_1"].Params) != 0 {
		t.Fatal("PLF row with unknown sid must be dropped")
	}
}

func TestBuild_MergePolicies(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{
			tf("ccf1.dat", "TC_A\tDEPLOY\tfirst"),
			tf("ccf2.dat", "TC_A\tDEPLOY2\tsecond"),
		},
		PCF: []TableFile{
			tf("pcf1.dat", "P0001\tMODE"),
			tf("pcf2.dat", "P0001\tMODE_OVERRIDE"),
		},
		PID: []TableFile{tf("pid.dat", "3\t25\t\t\t\tSID_1\thk")},
		PLF: []TableFile{tf("plf.dat", "P0001\tSID_1")},
	}
	ix := Build(in, BuildOptions{})

	// CCF by id: last file wins.
	if got := ix.TcByID["TC_A"].Description; got != "second" {
		t.Fatalf("TcByID merge: got %q, want last writer", got)
	}
	// CCF by name: both names point at whatever entry wrote them last.
	if ix.TcByName["DEPLOY"] == nil || ix.TcByName["DEPLOY2"] == nil {
		t.Fatal("both names should be indexed")
	}
	if ix.TcByName["DEPLOY2"].Description != "second" {
		t.Fatal("TcByName should retain the last write")
	}
	// PCF: first occurrence wins, across files.
	if got := ix.TmBySID["SID_1"].Params[0].Name; got != "MODE" {
		t.Fatalf("PCF merge: got %q, want first writer", got)
	}
}

func TestBuild_PLFNameResolution(t *testing.T) {
	in := Inputs{
		PID: []TableFile{tf("pid.dat", "3\t25\t\t\t\tSID_1\thk")},
		PCF: []TableFile{tf("pcf.dat", "P0001\tVOLTAGE\t\t\t\t\t\t\t\t\t\tENUM_7")},
		PLF: []TableFile{tf("plf.dat",
			"P0001\tSID_1",
			"P9999\tSID_1",
		)},
	}
	tm := Build(in, BuildOptions{}).TmBySID["SID_1"]
	if len(tm.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(tm.Params))
	}
	if tm.Params[0].Name != "VOLTAGE" || tm.Params[0].EnumSetID != "ENUM_7" {
		t.Fatalf("PCF resolution failed: %+v", tm.Params[0])
	}
	// No PCF row: the name falls back to the parameter ID.
	if tm.Params[1].Name != "P9999" || tm.Params[1].EnumSetID != "" {
		t.Fatalf("fallback failed: %+v", tm.Params[1])
	}
}

func TestBuild_CVEEnrichment(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{tf("ccf.dat", "TC_A\tDEPLOY")},
		CDF: []TableFile{tf("cdf.dat", "TC_A\tE\tMODE\t\t\t\tP0001")},
		CVE: []TableFile{tf("cve.dat",
			"1\tP0001\tE\tON",
			"2\tP0001\tE\tOFF",
			"3\tP0001\tE\tON", // duplicate label
			"4\tP0001\tN\t42", // numeric calibration, ignored
			"5\tP0002\tE\tIRRELEVANT",
		)},
	}
	p := Build(in, BuildOptions{}).TcByID["TC_A"].Params[0]
	if !reflect.DeepEqual(p.Enumerations, []string{"OFF", "ON"}) {
		t.Fatalf("unexpected enumerations: %q", p.Enumerations)
	}
}

func TestBuild_TXPTelemetrySide(t *testing.T) {
	in := Inputs{
		PID: []TableFile{tf("pid.dat", "3\t25\t\t\t\tSID_1\thk")},
		PCF: []TableFile{tf("pcf.dat", "P0001\tVOLTAGE\t\t\t\t\t\t\t\t\t\tENUM_7")},
		PLF: []TableFile{tf("plf.dat", "P0001\tSID_1")},
		TXP: []TableFile{tf("txp.dat",
			"ENUM_7\t0\t0\tNOMINAL",
			"ENUM_7\t1\t1\tSAFE",
			"ENUM_8\t0\t0\tOTHER",
		)},
	}
	p := Build(in, BuildOptions{}).TmBySID["SID_1"].Params[0]
	if !reflect.DeepEqual(p.Enumerations, []string{"NOMINAL", "SAFE"}) {
		t.Fatalf("unexpected enumerations: %q", p.Enumerations)
	}
}

func TestBuild_TXPCommandSide(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{tf("ccf.dat", "TC_A\tDEPLOY")},
		CDF: []TableFile{tf("cdf.dat", "TC_A\tE\tMODE\t\t\t\tP0001")},
		TXP: []TableFile{tf("txp.dat", "P0001\tARMED")},
	}

	// Off by default.
	p := Build(in, BuildOptions{}).TcByID["TC_A"].Params[0]
	if len(p.Enumerations) != 0 {
		t.Fatalf("command-side TXP must be opt-in, got %q", p.Enumerations)
	}

	p = Build(in, BuildOptions{TxpCommandSide: true}).TcByID["TC_A"].Params[0]
	if !reflect.DeepEqual(p.Enumerations, []string{"ARMED"}) {
		t.Fatalf("unexpected enumerations: %q", p.Enumerations)
	}
}

func TestParseCVP(t *testing.T) {
	assoc := map[string][]string{}
	parseCVP(tf("cvp.dat",
		"TC_A\tx\tV1",
		"TC_A\tx\tV2",
		"\tx\tV3",
		"TC_B\tx\t",
	), assoc)
	if !reflect.DeepEqual(assoc["TC_A"], []string{"V1", "V2"}) {
		t.Fatalf("unexpected associations: %q", assoc["TC_A"])
	}
	if _, ok := assoc["TC_B"]; ok {
		t.Fatal("empty value id must not be recorded")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	in := Inputs{
		CCF: []TableFile{tf("ccf.dat", "TC_A\tDEPLOY\tdesc", "TC_B\tRESET")},
		CDF: []TableFile{tf("cdf.dat", "TC_A\tE\tMODE\t\t\t\tP0001")},
		PID: []TableFile{tf("pid.dat", "3\t25\t\t\t\tSID_1\thk")},
		PCF: []TableFile{tf("pcf.dat", "P0001\tMODE\t\t\t\t\t\t\t\t\t\tENUM_7")},
		PLF: []TableFile{tf("plf.dat", "P0001\tSID_1")},
		CVE: []TableFile{tf("cve.dat", "1\tP0001\tE\tON")},
		TXP: []TableFile{tf("txp.dat", "ENUM_7\tSAFE")},
	}
	a := Build(in, BuildOptions{})
	b := Build(in, BuildOptions{})
	if !reflect.DeepEqual(a.TcByID, b.TcByID) {
		t.Fatal("TcByID differs between identical builds")
	}
	if !reflect.DeepEqual(a.TcByName, b.TcByName) {
		t.Fatal("TcByName differs between identical builds")
	}
	if !reflect.DeepEqual(a.TmBySID, b.TmBySID) {
		t.Fatal("TmBySID differs between identical builds")
	}
}
