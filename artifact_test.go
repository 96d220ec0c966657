package regreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testArtifact() *Artifact {
	tbl := NewTable("SHEET", "Name", "Amount")
	tbl.Append(Text("a"), Num(eur(10)))
	tbl.Append(Text("b"), Num(eur(-4)))
	return &Artifact{RunID: "test-run", Kind: ReportArtifact, On: testReportDate, Tables: []*Table{tbl}}
}

func TestCSVWriter(t *testing.T) {
	root := t.TempDir()
	w := &CSVWriter{Roots: []string{root}}
	if err := w.Write(testArtifact()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// the artifact directory is named after the run kind and the quarter
	path := filepath.Join(root, "report_2025-Q2", "SHEET.csv")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	want := "Name,Amount\na,10\nb,-4\n"
	if string(raw) != want {
		t.Errorf("csv = %q, want %q", raw, want)
	}
}

func TestCSVWriterFallsBackToNextRoot(t *testing.T) {
	root := t.TempDir()
	// the first root cannot exist: a file stands in the way of MkdirAll
	blocked := filepath.Join(root, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(root, "good")

	w := &CSVWriter{Roots: []string{blocked, good}}
	if err := w.Write(testArtifact()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(good, "report_2025-Q2", "SHEET.csv")); err != nil {
		t.Errorf("artifact not written under the fallback root: %v", err)
	}
}

func TestCSVWriterNoRoots(t *testing.T) {
	w := &CSVWriter{}
	err := w.Write(testArtifact())
	if err == nil || !strings.Contains(err.Error(), "no artifact root") {
		t.Errorf("Write() error = %v, want a no-root error", err)
	}
}

func TestArtifactTable(t *testing.T) {
	a := testArtifact()
	if a.Table("SHEET") == nil {
		t.Error("Table(SHEET) = nil")
	}
	if a.Table("MISSING") != nil {
		t.Error("Table(MISSING) != nil")
	}
}
