package regreport

import (
	"testing"
	"time"

	"github.com/kvartal/regreport/date"
)

func TestAddTotalRow(t *testing.T) {
	tbl := NewTable("t", "Name", "Amount", "Count")
	tbl.Append(Text("a"), Num(eur(10)), Qty(Q(1)))
	tbl.Append(Text("b"), Num(eur(-4)), Qty(Q(2)))
	tbl.AddTotalRow()

	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	total := tbl.Rows[2]
	if got := total[0].String(); got != TotalLabel {
		t.Errorf("label column = %q, want %q", got, TotalLabel)
	}
	if !total[1].Money().Equal(eur(6)) {
		t.Errorf("money total = %s, want 6", total[1].Money().Decimal())
	}
	if !total[2].Quantity().Equal(Q(3)) {
		t.Errorf("quantity total = %s, want 3", total[2].Quantity())
	}
}

func TestAddTotalRowWithoutNumericColumn(t *testing.T) {
	tbl := NewTable("t", "Key", "Name")
	tbl.Append(Text("k"), Text("n"))
	tbl.AddTotalRow()
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1 (no totals row without a numeric column)", len(tbl.Rows))
	}
}

func TestAddTotalRowSkipsTextInNumericColumn(t *testing.T) {
	// A column is numeric as soon as one cell is; text and empty cells in it
	// simply do not contribute to the sum.
	tbl := NewTable("t", "Name", "Amount")
	tbl.Append(Text("a"), Num(eur(10)))
	tbl.Append(Text("b"), Empty())
	tbl.AddTotalRow()
	total := tbl.Rows[2]
	if !total[1].Money().Equal(eur(10)) {
		t.Errorf("money total = %s, want 10", total[1].Money().Decimal())
	}
}

func TestCellString(t *testing.T) {
	testCases := []struct {
		cell Cell
		want string
	}{
		{Text("abc"), "abc"},
		{Text(""), ""},
		{Empty(), ""},
		{Num(eur(-12)), "-12"},
		{Qty(Q(5)), "5"},
		{Day(date.New(2025, time.June, 30)), "2025-06-30"},
		{Day(date.Date{}), ""},
	}
	for _, tc := range testCases {
		if got := tc.cell.String(); got != tc.want {
			t.Errorf("Cell.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestAppendPanicsOnWidthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("appending a short row did not panic")
		}
	}()
	NewTable("t", "a", "b").Append(Text("only one"))
}
