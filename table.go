package regreport

import "github.com/kvartal/regreport/date"

type cellKind int

const (
	cellEmpty cellKind = iota
	cellText
	cellMoney
	cellQuantity
	cellDate
)

// Cell is one typed value of a report table. Money and Quantity cells are
// numeric; text, date and empty cells are not.
type Cell struct {
	kind  cellKind
	text  string
	money Money
	qty   Quantity
	day   date.Date
}

// Text returns a text cell; an empty string yields an empty cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{kind: cellText, text: s}
}

// Num returns a money cell.
func Num(m Money) Cell { return Cell{kind: cellMoney, money: m} }

// Qty returns a quantity cell.
func Qty(q Quantity) Cell { return Cell{kind: cellQuantity, qty: q} }

// Day returns a date cell; the zero date yields an empty cell.
func Day(d date.Date) Cell {
	if d.IsZero() {
		return Cell{}
	}
	return Cell{kind: cellDate, day: d}
}

// Empty returns the blank cell.
func Empty() Cell { return Cell{} }

// IsNumeric reports whether the cell takes part in a totals-row sum.
func (c Cell) IsNumeric() bool { return c.kind == cellMoney || c.kind == cellQuantity }

// Money returns the money value of a money cell, or the zero Money.
func (c Cell) Money() Money { return c.money }

// Quantity returns the quantity value of a quantity cell, or the zero Quantity.
func (c Cell) Quantity() Quantity { return c.qty }

func (c Cell) String() string {
	switch c.kind {
	case cellText:
		return c.text
	case cellMoney:
		return c.money.Decimal().String()
	case cellQuantity:
		return c.qty.String()
	case cellDate:
		return c.day.String()
	default:
		return ""
	}
}

// Table is a named rectangular report table with a fixed column order.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]Cell
}

// NewTable returns an empty table with the given name and column order.
func NewTable(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds one row. The number of cells must match the column count.
func (t *Table) Append(cells ...Cell) {
	if len(cells) != len(t.Columns) {
		panic("row width does not match table " + t.Name)
	}
	t.Rows = append(t.Rows, cells)
}

// TotalLabel is the literal written in every non-numeric column of the
// synthetic totals row.
const TotalLabel = "Total"

// AddTotalRow appends one synthetic totals row: each numeric column gets the
// column-wise sum of all data rows, every other column reads TotalLabel.
// A table without a single numeric cell is returned unchanged.
func (t *Table) AddTotalRow() *Table {
	numeric := make([]bool, len(t.Columns))
	found := false
	for _, row := range t.Rows {
		for i, c := range row {
			if c.IsNumeric() {
				numeric[i] = true
				found = true
			}
		}
	}
	if !found {
		return t
	}

	total := make([]Cell, len(t.Columns))
	for i := range t.Columns {
		if !numeric[i] {
			total[i] = Text(TotalLabel)
			continue
		}
		var m Money
		var q Quantity
		isQty := false
		for _, row := range t.Rows {
			switch row[i].kind {
			case cellMoney:
				m = m.Add(row[i].money)
			case cellQuantity:
				q = q.Add(row[i].qty)
				isQty = true
			}
		}
		if isQty {
			total[i] = Qty(q)
		} else {
			total[i] = Num(m)
		}
	}
	t.Rows = append(t.Rows, total)
	return t
}
