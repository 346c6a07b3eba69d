package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestReadAndMolecules(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "in.csv", "id,smiles,note\n1,CCO,ethanol\n2,\"CC(=O)O\",acetic acid\n")
	tab, err := Read(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(tab.Header) != 3 || len(tab.Rows) != 2 {
		t.Fatalf("unexpected shape: header=%v rows=%d", tab.Header, len(tab.Rows))
	}
	mols := tab.Molecules()
	if len(mols) != 2 || mols[0].SMILES != "CCO" || mols[1].SMILES != "CC(=O)O" {
		t.Fatalf("unexpected molecules: %+v", mols)
	}
}

func TestReadMissingColumn(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.csv", "id,structure\n1,CCO\n")
	_, err := Read(p)
	if err == nil || !IsSchema(err) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestReadColumnNameIsCaseSensitive(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "caps.csv", "SMILES\nCCO\n")
	_, err := Read(p)
	if err == nil || !IsSchema(err) {
		t.Fatalf("expected schema error for uppercase header, got %v", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "empty.csv", "")
	_, err := Read(p)
	if err == nil || !IsSchema(err) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestWriteAugmentedPreservesOrderAndColumns(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "in.csv", "id,smiles\n1,CCO\n2,c1ccccc1\n3,CCN\n")
	tab, err := Read(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := filepath.Join(d, "out.csv")
	names := []string{"a", "b", "c"}
	cells := [][]string{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}}
	if err := tab.WriteAugmented(out, names, cells); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(recs))
	}
	for _, r := range recs {
		if len(r) != len(tab.Header)+3 {
			t.Fatalf("expected %d columns, got %d: %v", len(tab.Header)+3, len(r), r)
		}
	}
	if recs[0][2] != "a" || recs[0][4] != "c" {
		t.Fatalf("unexpected header: %v", recs[0])
	}
	// row order preserved: input row i maps to output row i
	if recs[1][1] != "CCO" || recs[2][1] != "c1ccccc1" || recs[3][1] != "CCN" {
		t.Fatalf("row order not preserved: %v", recs)
	}
	if recs[2][2] != "4" || recs[3][4] != "9" {
		t.Fatalf("appended cells misaligned: %v", recs)
	}
}

func TestWriteAugmentedRowMismatch(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "in.csv", "smiles\nCCO\nCCN\n")
	tab, err := Read(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	err = tab.WriteAugmented(filepath.Join(d, "out.csv"), []string{"a"}, [][]string{{"1"}})
	if err == nil {
		t.Fatalf("expected row count mismatch error")
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"input.csv", "input_predict.csv"},
		{"/data/mols.csv", "/data/mols_predict.csv"},
		{"noext", "noext_predict"},
		{"a.b.csv", "a.b_predict.csv"},
	}
	for _, c := range cases {
		if got := OutputPath(c.in); got != c.want {
			t.Fatalf("OutputPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
