package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/kvartal/regreport"
	"github.com/kvartal/regreport/date"
)

func testTable() *regreport.Table {
	t := regreport.NewTable("SHEET", "Name", "Amount")
	t.Append(regreport.Text("a"), regreport.Num(regreport.M(10, "EUR")))
	return t.AddTotalRow()
}

func TestTableMarkdown(t *testing.T) {
	md := TableMarkdown(testTable())

	for _, want := range []string{
		"## SHEET",
		"| Name | Amount |",
		"|:---|---:|",
		"| a | 10 |",
		"| **Total** | **10** |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown does not contain %q:\n%s", want, md)
		}
	}
}

func TestTableMarkdownEmpty(t *testing.T) {
	md := TableMarkdown(regreport.NewTable("EMPTY", "Name"))
	if !strings.Contains(md, "no rows") {
		t.Errorf("markdown for an empty table = %q", md)
	}
}

func TestArtifactMarkdown(t *testing.T) {
	on := date.New(2025, time.June, 30)
	report := &regreport.Artifact{RunID: "r1", Kind: regreport.ReportArtifact, On: on, Tables: []*regreport.Table{testTable()}}
	md := ArtifactMarkdown(report)
	if !strings.Contains(md, "# Quarterly Report as of 2025-06-30") {
		t.Errorf("report title missing:\n%s", md)
	}
	if !strings.Contains(md, "Run: r1") {
		t.Errorf("run id missing:\n%s", md)
	}

	gaps := &regreport.Artifact{RunID: "r2", Kind: regreport.GapArtifact, On: on}
	md = ArtifactMarkdown(gaps)
	if !strings.Contains(md, "# Mapping Gaps as of 2025-06-30") {
		t.Errorf("gap title missing:\n%s", md)
	}
}
