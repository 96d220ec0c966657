package regreport

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvartal/regreport/date"
)

// ArtifactKind tells a report artifact from a gap artifact.
type ArtifactKind int

const (
	// ReportArtifact holds the assembled report tables of a successful run.
	ReportArtifact ArtifactKind = iota
	// GapArtifact holds the gap tables of a run aborted by the
	// reconciliation gate.
	GapArtifact
)

func (k ArtifactKind) String() string {
	if k == GapArtifact {
		return "gaps"
	}
	return "report"
}

// Artifact is the set of named tables one run produces: either the report
// tables or the gap tables, never both.
type Artifact struct {
	RunID  string
	Kind   ArtifactKind
	On     date.Date
	Tables []*Table
}

// Table returns the named table, or nil.
func (a *Artifact) Table(name string) *Table {
	for _, t := range a.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// CSVWriter persists an artifact as one CSV file per table, in the first
// root directory it can create the artifact directory under. Trying roots in
// order mirrors the operational setup where a local path is preferred and a
// network share is the fallback.
type CSVWriter struct {
	Roots []string
}

var _ ArtifactWriter = (*CSVWriter)(nil)

func (w *CSVWriter) Write(a *Artifact) error {
	name := fmt.Sprintf("%s_%s", a.Kind, date.Quarterly.Range(a.On).Identifier())
	var firstErr error
	for _, root := range w.Roots {
		dir := filepath.Join(root, name)
		if err := w.writeAll(dir, a); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return nil
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("no artifact root configured")
	}
	return fmt.Errorf("all artifact roots failed: %w", firstErr)
}

func (w *CSVWriter) writeAll(dir string, a *Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, t := range a.Tables {
		if err := writeTable(filepath.Join(dir, t.Name+".csv"), t); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range row {
			record[i] = c.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}
