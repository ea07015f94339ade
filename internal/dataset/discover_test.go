package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover_MatchesTableKinds(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "ccf.dat"), []byte("TC_A\tDEPLOY\n"))
	writeFile(t, filepath.Join(tmp, "ASCII", "CDF.dat"), []byte("TC_A\tE\tMODE\n"))
	writeFile(t, filepath.Join(tmp, "pcf"), []byte("P0001\tMODE\n"))
	writeFile(t, filepath.Join(tmp, "notes.txt"), []byte("not a table\n"))
	writeFile(t, filepath.Join(tmp, "ccf.bak"), []byte("TC_OLD\n"))

	files, err := Discover(tmp)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files.CCF) != 1 || len(files.CDF) != 1 || len(files.PCF) != 1 {
		t.Fatalf("unexpected discovery: %+v", files)
	}
	if len(files.PID) != 0 || len(files.TXP) != 0 {
		t.Fatalf("phantom kinds discovered: %+v", files)
	}
	if files.Empty() {
		t.Fatal("Empty() must be false after discovery")
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestReadTable_DecodesLatin1(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "ccf.dat")
	// "TC_A\tD\xE9PLOIEMENT" — 0xE9 is é in ISO 8859-1 and invalid UTF-8.
	writeFile(t, path, []byte{'T', 'C', '_', 'A', '\t', 'D', 0xE9, 'P'})

	tf, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(tf.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(tf.Lines))
	}
	if tf.Lines[0] != "TC_A\tDéP" {
		t.Fatalf("unexpected decode: %q", tf.Lines[0])
	}
	if tf.Source != path {
		t.Fatalf("unexpected source: %q", tf.Source)
	}
}

func TestLoad_ReadsAllKindsInOrder(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a", "ccf.dat"), []byte("TC_A\tDEPLOY\n"))
	writeFile(t, filepath.Join(tmp, "b", "ccf.dat"), []byte("TC_B\tRESET\n"))

	in, files, err := Load([]string{filepath.Join(tmp, "a"), filepath.Join(tmp, "b")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(files.CCF) != 2 || len(in.CCF) != 2 {
		t.Fatalf("expected both CCF files, got %d/%d", len(files.CCF), len(in.CCF))
	}
	// Root order is preserved so later datasets merge over earlier ones.
	if in.CCF[0].Lines[0] != "TC_A\tDEPLOY" || in.CCF[1].Lines[0] != "TC_B\tRESET" {
		t.Fatalf("unexpected read order: %+v", in.CCF)
	}
}

func TestFingerprint_TracksFileIdentity(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "ccf.dat")
	writeFile(t, path, []byte("TC_A\tDEPLOY\n"))

	fp1, err := Fingerprint([]string{path})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	fp2, err := Fingerprint([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if fp1 != fp2 {
		t.Fatal("fingerprint must be stable for an unchanged file")
	}

	// A size change is always visible, whatever the mtime granularity.
	writeFile(t, path, []byte("TC_A\tDEPLOY\nTC_B\tRESET\n"))
	fp3, err := Fingerprint([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if fp3 == fp1 {
		t.Fatal("fingerprint must change when a file changes")
	}

	if _, err := Fingerprint([]string{filepath.Join(tmp, "missing")}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
