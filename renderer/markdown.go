// Package renderer turns run artifacts into markdown for terminal review.
// Persistence is the artifact writer's business; this package only formats.
package renderer

import (
	"fmt"
	"strings"

	"github.com/kvartal/regreport"
)

// ArtifactMarkdown renders every table of an artifact under one title.
func ArtifactMarkdown(a *regreport.Artifact) string {
	var b strings.Builder

	switch a.Kind {
	case regreport.GapArtifact:
		fmt.Fprintf(&b, "# Mapping Gaps as of %s\n\n", a.On)
		fmt.Fprint(&b, "The run was aborted: the mapping tables below do not cover every fact key. Update the mappings and rerun.\n\n")
	default:
		fmt.Fprintf(&b, "# Quarterly Report as of %s\n\n", a.On)
	}
	fmt.Fprintf(&b, "Run: %s\n\n", a.RunID)

	for _, t := range a.Tables {
		b.WriteString(TableMarkdown(t))
		b.WriteString("\n")
	}
	return b.String()
}

// TableMarkdown renders one table as a markdown section. Numeric columns are
// right-aligned; the trailing totals row, when present, is bolded.
func TableMarkdown(t *regreport.Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", t.Name)
	if len(t.Rows) == 0 {
		fmt.Fprint(&b, "no rows\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| %s |\n", strings.Join(t.Columns, " | "))
	marks := make([]string, len(t.Columns))
	for i := range t.Columns {
		if columnNumeric(t, i) {
			marks[i] = "---:"
		} else {
			marks[i] = ":---"
		}
	}
	fmt.Fprintf(&b, "|%s|\n", strings.Join(marks, "|"))

	for r, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.String()
		}
		if r == len(t.Rows)-1 && isTotalRow(row) {
			for i, s := range cells {
				if s != "" {
					cells[i] = "**" + s + "**"
				}
			}
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
	}
	return b.String()
}

func columnNumeric(t *regreport.Table, i int) bool {
	for _, row := range t.Rows {
		if row[i].IsNumeric() {
			return true
		}
	}
	return false
}

func isTotalRow(row []regreport.Cell) bool {
	for _, c := range row {
		if c.String() == regreport.TotalLabel {
			return true
		}
	}
	return false
}
