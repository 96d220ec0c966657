package regreport

import "testing"

func testReport() []*Table {
	s := preparedSnapshot()
	return assembleSnapshot(s)
}

func assembleSnapshot(s *Snapshot) []*Table {
	dates := NewDates(testReportDate)
	return Assemble(s, NewAggregator(s, dates), dates)
}

func findTable(t *testing.T, tables []*Table, name string) *Table {
	t.Helper()
	for _, tbl := range tables {
		if tbl.Name == name {
			return tbl
		}
	}
	t.Fatalf("table %q not assembled", name)
	return nil
}

func TestAssembleTableOrder(t *testing.T) {
	want := []string{
		SheetRealizedAll,
		SheetRealizedFunds,
		SheetUnrealizedAll,
		SheetUnrealizedFunds,
		SheetBondsUnderOneYear,
		SheetBondsOverOneYear,
		SheetPositionsLookup,
		SheetAccountsLookup,
		SheetCombinedLookup,
	}
	tables := testReport()
	if len(tables) != len(want) {
		t.Fatalf("tables = %d, want %d", len(tables), len(want))
	}
	for i, name := range want {
		if tables[i].Name != name {
			t.Errorf("tables[%d].Name = %q, want %q", i, tables[i].Name, name)
		}
	}
}

func TestRealizedAllSheet(t *testing.T) {
	tbl := findTable(t, testReport(), SheetRealizedAll)
	// nine category rows plus the totals row
	if len(tbl.Rows) != len(AllCategories())+1 {
		t.Fatalf("rows = %d, want %d", len(tbl.Rows), len(AllCategories())+1)
	}

	var fund []Cell
	for _, row := range tbl.Rows {
		if row[0].String() == FundShares.Label() {
			fund = row
		}
	}
	if fund == nil {
		t.Fatal("no fund-shares row")
	}
	if !fund[1].Quantity().Equal(Q(10)) {
		t.Errorf("shares = %s, want 10", fund[1].Quantity())
	}
	if !fund[2].Money().Equal(eur(300)) {
		t.Errorf("accounting value = %s, want 300", fund[2].Money().Decimal())
	}
	if !fund[3].Money().Equal(eur(340)) {
		t.Errorf("sell value = %s, want 340", fund[3].Money().Decimal())
	}
	if !fund[4].Money().Equal(eur(40)) {
		t.Errorf("realized profit = %s, want 40", fund[4].Money().Decimal())
	}

	total := tbl.Rows[len(tbl.Rows)-1]
	if total[0].String() != TotalLabel {
		t.Errorf("totals label = %q, want %q", total[0].String(), TotalLabel)
	}
	// only fund shares contribute in the fixture
	if !total[4].Money().Equal(eur(40)) {
		t.Errorf("totals realized profit = %s, want 40", total[4].Money().Decimal())
	}
}

func TestUnrealizedAllSheet(t *testing.T) {
	tbl := findTable(t, testReport(), SheetUnrealizedAll)

	var fund []Cell
	for _, row := range tbl.Rows {
		if row[0].String() == FundShares.Label() {
			fund = row
		}
	}
	if fund == nil {
		t.Fatal("no fund-shares row")
	}
	if !fund[1].Money().Equal(eur(800)) {
		t.Errorf("accounting value = %s, want 800", fund[1].Money().Decimal())
	}
	if !fund[2].Money().Equal(eur(850)) {
		t.Errorf("objective value = %s, want 850", fund[2].Money().Decimal())
	}
	if !fund[3].Money().Equal(eur(50)) {
		t.Errorf("revaluation effect = %s, want 50", fund[3].Money().Decimal())
	}
	if !fund[4].Money().Equal(eur(80)) {
		t.Errorf("reserve = %s, want 80", fund[4].Money().Decimal())
	}
	if fund[5].String() != "" {
		t.Errorf("value adjustment column = %q, want empty", fund[5].String())
	}
}

func TestDetailedFundSheet(t *testing.T) {
	tbl := findTable(t, testReport(), SheetUnrealizedFunds)
	// one tag row plus the totals row
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	row := tbl.Rows[0]
	if row[0].String() != "Global Fund" {
		t.Errorf("tag = %q, want %q", row[0].String(), "Global Fund")
	}
	if row[1].String() != "FVTPL" {
		t.Errorf("ifrs class = %q, want FVTPL", row[1].String())
	}
	if row[4].String() != testReportDate.String() {
		t.Errorf("last valuation date = %q, want %s", row[4].String(), testReportDate)
	}
	if !row[5].Money().Equal(eur(800)) {
		t.Errorf("accounting value = %s, want 800", row[5].Money().Decimal())
	}
	if row[12].String() != "Own funds" {
		t.Errorf("funding source = %q, want %q", row[12].String(), "Own funds")
	}
}

func TestPositionsLookupSheet(t *testing.T) {
	tbl := findTable(t, testReport(), SheetPositionsLookup)
	if len(tbl.Columns) != 32 {
		t.Fatalf("columns = %d, want 32", len(tbl.Columns))
	}
	// one position row plus the totals row
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	row := tbl.Rows[0]
	if !row[10].Quantity().Equal(Q(250)) {
		t.Errorf("quantity = %s, want 250", row[10].Quantity())
	}
	if !row[17].Money().Equal(eur(900)) {
		t.Errorf("acquisition value = %s, want 900", row[17].Money().Decimal())
	}
	if !row[21].Money().Equal(eur(1010)) {
		t.Errorf("accounting value = %s, want 1010", row[21].Money().Decimal())
	}
	if !row[22].Money().Equal(M(1010, "")) {
		t.Errorf("accounting value (original currency) = %s, want 1010", row[22].Money().Decimal())
	}
	if row[23].String() != "EUR" {
		t.Errorf("currency = %q, want decoded EUR", row[23].String())
	}
	if row[31].String() != "S&P" {
		t.Errorf("rating agency = %q, want decoded S&P", row[31].String())
	}
}

func TestPositionLotOfHundred(t *testing.T) {
	s := preparedSnapshot()
	p := s.Positions[0]
	p.SecurityID = "SI0002"
	p.LotNominal = Q(100)
	p.Quantity = Q(500)
	s.Positions = append(s.Positions, p)
	s.Mappings.Positions[BuildKey("SI0002", "VPS", "LT")] = LookupAttrs{FundingSource: "Own funds"}
	s.DeriveKeys()

	tbl := findTable(t, assembleSnapshot(s), SheetPositionsLookup)
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if got := tbl.Rows[1][10].Quantity(); !got.Equal(Q(5)) {
		t.Errorf("lot-of-100 quantity = %s, want 5", got)
	}
}

func TestPositionNamedStejsnReportsNoQuantity(t *testing.T) {
	s := preparedSnapshot()
	p := s.Positions[0]
	p.SecurityID = "SI0004"
	p.Name = "Stejšn Maribor"
	p.Quantity = Q(120)
	s.Positions = append(s.Positions, p)
	s.Mappings.Positions[BuildKey("SI0004", "VPS", "LT")] = LookupAttrs{FundingSource: "Own funds"}
	s.DeriveKeys()

	tbl := findTable(t, assembleSnapshot(s), SheetPositionsLookup)
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	// the row stays on the sheet, values intact, but the quantity is zeroed
	if got := tbl.Rows[1][10].Quantity(); !got.Equal(Q(0)) {
		t.Errorf("quantity = %s, want 0", got)
	}
	if !tbl.Rows[1][17].Money().Equal(eur(900)) {
		t.Errorf("acquisition value = %s, want 900", tbl.Rows[1][17].Money().Decimal())
	}
}

func TestPositionWithoutFundingSourceSkipped(t *testing.T) {
	s := preparedSnapshot()
	p := s.Positions[0]
	p.SecurityID = "SI0003"
	s.Positions = append(s.Positions, p)
	s.Mappings.Positions[BuildKey("SI0003", "VPS", "LT")] = LookupAttrs{}
	s.DeriveKeys()

	tbl := findTable(t, assembleSnapshot(s), SheetPositionsLookup)
	// the extra position has no funding source and stays off the sheet
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
}

func TestAccountsLookupZeroesAcquisition(t *testing.T) {
	tbl := findTable(t, testReport(), SheetAccountsLookup)
	row := tbl.Rows[0]
	// account 020300 reports a zero acquisition value but keeps its balance
	if got := row[17].Money().Decimal().String(); got != "0" {
		t.Errorf("acquisition value = %q, want 0", got)
	}
	if !row[21].Money().Equal(eur(500)) {
		t.Errorf("accounting value = %s, want 500", row[21].Money().Decimal())
	}
	if row[23].String() != "EUR" {
		t.Errorf("currency = %q, want EUR", row[23].String())
	}
}

func TestCombinedLookupAccountsFirst(t *testing.T) {
	tbl := findTable(t, testReport(), SheetCombinedLookup)
	// one account row, one position row, one totals row
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if got := tbl.Rows[0][5].String(); got != "Subsidiary d.o.o." {
		t.Errorf("first row issuer = %q, want the account row", got)
	}
	if got := tbl.Rows[1][8].String(); got != "SI0031101234" {
		t.Errorf("second row isin = %q, want the position row", got)
	}
}
