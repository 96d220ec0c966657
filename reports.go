package regreport

import "strings"

// Sheet names of the report artifact.
const (
	SheetRealizedAll       = "REALIZED_PROFIT_ALL"
	SheetRealizedFunds     = "REALIZED_PROFIT_FUNDS"
	SheetUnrealizedAll     = "UNREALIZED_PROFIT_ALL"
	SheetUnrealizedFunds   = "UNREALIZED_PROFIT_FUNDS"
	SheetBondsUnderOneYear = "UNREALIZED_PROFIT_BONDS_UNDER_1Y"
	SheetBondsOverOneYear  = "UNREALIZED_PROFIT_BONDS_OVER_1Y"
	SheetPositionsLookup   = "POSITIONS_LOOKUP"
	SheetAccountsLookup    = "ACCOUNTS_LOOKUP"
	SheetCombinedLookup    = "COMBINED_LOOKUP"
)

// zeroAcquisitionAccounts lists the ledger accounts whose acquisition value
// is reported as zero on the accounts lookup sheet.
var zeroAcquisitionAccounts = map[string]bool{
	"020300":  true,
	"020380":  true,
	"021307":  true,
	"021387":  true,
	"0213901": true,
}

// Assemble joins the aggregated sums with descriptive mapping attributes
// into the named report tables, in a fixed order, each with its synthetic
// totals row. It must only run on a snapshot that passed reconciliation.
func Assemble(s *Snapshot, a *Aggregator, dates Dates) []*Table {
	return []*Table{
		assembleRealizedAll(a),
		assembleRealizedFunds(a),
		assembleUnrealizedAll(a),
		assembleDetailed(a, FundShares, SheetUnrealizedFunds, dates),
		assembleDetailed(a, ShortTermDebt, SheetBondsUnderOneYear, dates),
		assembleDetailed(a, LongTermDebt, SheetBondsOverOneYear, dates),
		assemblePositionsLookup(s),
		assembleAccountsLookup(s),
		assembleCombinedLookup(s),
	}
}

func assembleRealizedAll(a *Aggregator) *Table {
	t := NewTable(SheetRealizedAll,
		"Category",
		"Number of securities",
		"Accounting value",
		"Sell value",
		"Realized profit (loss)")
	for _, cat := range AllCategories() {
		v := a.Realized(cat, "")
		t.Append(
			Text(cat.Label()),
			Qty(v.Shares),
			Num(v.AccountingValue),
			Num(v.SellValue()),
			Num(v.PnL))
	}
	return t.AddTotalRow()
}

func assembleRealizedFunds(a *Aggregator) *Table {
	t := NewTable(SheetRealizedFunds,
		"Tag",
		"IFRS classification",
		"Number of securities",
		"Accounting value",
		"Sell value",
		"Realized profit (loss)",
		"Funding source")
	for _, tag := range a.RealizedTags(FundShares) {
		v := a.Realized(FundShares, tag)
		attrs := a.RealizedTagAttrs(FundShares, tag)
		t.Append(
			Text(tag),
			Text(attrs.IFRSClass),
			Qty(v.Shares),
			Num(v.AccountingValue),
			Num(v.SellValue()),
			Num(v.PnL),
			Text(attrs.FundingSource))
	}
	return t.AddTotalRow()
}

func assembleUnrealizedAll(a *Aggregator) *Table {
	t := NewTable(SheetUnrealizedAll,
		"Category",
		"Total acquisition cost/accounting value",
		"Objective value at last valuation date",
		"Revaluation effect",
		"Revaluation reserve (status)",
		"Value adjustment recognized directly in P&L",
		"Net exchange rate difference",
		"Amortization of discount/premium")
	for _, cat := range AllCategories() {
		v := a.Values(cat, "")
		t.Append(
			Text(cat.Label()),
			Num(v.AccountingValue()),
			Num(v.ObjectiveValue()),
			Num(v.RevaluationEffect()),
			Num(v.Reserve()),
			Empty(), // maintained downstream, never computed here
			Num(v.FX()),
			Num(v.Amortization()))
	}
	return t.AddTotalRow()
}

func assembleDetailed(a *Aggregator, cat Category, name string, dates Dates) *Table {
	t := NewTable(name,
		"Tag",
		"IFRS classification",
		"Valuation method",
		"Valuation method (if other)",
		"Last valuation date",
		"Total acquisition cost/accounting value",
		"Objective value at last valuation date",
		"Revaluation effect",
		"Revaluation reserve (status)",
		"Value adjustment recognized directly in P&L",
		"Net exchange rate difference",
		"Amortization of discount/premium",
		"Funding source")
	for _, tag := range a.Tags(cat) {
		v := a.Values(cat, tag)
		attrs := a.TagAttrs(cat, tag)
		t.Append(
			Text(tag),
			Text(attrs.IFRSClass),
			Text(attrs.ValuationMethod),
			Text(attrs.ValuationMethodAlt),
			Day(dates.Report),
			Num(v.AccountingValue()),
			Num(v.ObjectiveValue()),
			Num(v.RevaluationEffect()),
			Num(v.Reserve()),
			Empty(),
			Num(v.FX()),
			Num(v.Amortization()),
			Text(attrs.FundingSource))
	}
	return t.AddTotalRow()
}

// lookupColumns is the fixed 32-column order shared by the cross-source
// lookup sheets.
var lookupColumns = []string{
	"Funding source",
	"Balance sheet item",
	"Company type",
	"Company subtype",
	"Guarantee",
	"Issuer name",
	"Issuer name (if different)",
	"Sector",
	"ISIN",
	"Property",
	"Quantity",
	"IFRS classification",
	"Valuation method",
	"Issuer country",
	"Trading country",
	"Regulated market",
	"Valuation source",
	"Acquisition value",
	"Accrued interest",
	"Amortized costs",
	"Objective value",
	"Accounting value",
	"Accounting value (original currency)",
	"Currency",
	"Coupon type",
	"Coupon frequency",
	"Interest rate",
	"Effective interest rate",
	"Purchase date",
	"Maturity date",
	"Rating",
	"Rating agency",
}

func assemblePositionsLookup(s *Snapshot) *Table {
	t := NewTable(SheetPositionsLookup, lookupColumns...)
	appendPositionRows(t, s)
	return t.AddTotalRow()
}

func assembleAccountsLookup(s *Snapshot) *Table {
	t := NewTable(SheetAccountsLookup, lookupColumns...)
	appendAccountRows(t, s)
	return t.AddTotalRow()
}

// assembleCombinedLookup concatenates the account rows and the position rows
// into one sheet, accounts first.
func assembleCombinedLookup(s *Snapshot) *Table {
	t := NewTable(SheetCombinedLookup, lookupColumns...)
	appendAccountRows(t, s)
	appendPositionRows(t, s)
	return t.AddTotalRow()
}

func appendPositionRows(t *Table, s *Snapshot) {
	for _, p := range s.Positions {
		attrs, ok := s.Mappings.Positions[p.PositionKey]
		if !ok || attrs.FundingSource == "" {
			// Rows without a funding source are not reportable.
			continue
		}
		qty := p.Quantity
		if p.LotNominal.Equal(Q(100)) {
			// The source system counts lots of 100 as single units.
			qty = qty.Div(Q(100))
		}
		if strings.Contains(p.Name, "Stejšn") {
			// Stejšn premises are carried by value only, without a unit count.
			qty = Q(0)
		}
		t.Append(
			Text(attrs.FundingSource),
			Text(attrs.BalanceSheetItem),
			Text(attrs.CompanyType),
			Text(attrs.CompanySubtype),
			Text(attrs.Guarantee),
			Text(attrs.IssuerName),
			Text(attrs.IssuerNameAlt),
			Text(attrs.Sector),
			Text(p.ISIN),
			Text(attrs.Property),
			Qty(qty),
			Text(attrs.IFRSClass),
			Text(attrs.ValuationMethod),
			Text(attrs.IssuerCountry),
			Text(attrs.TradingCountry),
			Text(attrs.RegulatedMarket),
			Text(attrs.ValuationSource),
			Num(p.AcquisitionValue),
			Num(p.AccruedInterest),
			Empty(), // amortized costs are maintained downstream
			Num(p.AccountingValue()),
			Num(p.AccountingValue()),
			Num(p.AccountingValueQC()),
			Text(s.Mappings.Code(p.QuotationCurrency)),
			Text(attrs.CouponType),
			Text(p.CouponFrequency),
			Text(p.CouponRate),
			Text(p.EffectiveRate),
			Day(p.PurchaseDate),
			Day(p.MaturityDate),
			Text(p.Rating),
			Text(s.Mappings.Code(p.RatingAgency)))
	}
}

func appendAccountRows(t *Table, s *Snapshot) {
	for _, b := range s.Accounts {
		attrs, ok := s.Mappings.Accounts[b.AccountKey]
		if !ok || attrs.FundingSource == "" {
			continue
		}
		acquisition := b.Balance
		if zeroAcquisitionAccounts[b.No] {
			acquisition = M(0, b.Balance.Currency())
		}
		t.Append(
			Text(attrs.FundingSource),
			Text(attrs.BalanceSheetItem),
			Text(attrs.CompanyType),
			Text(attrs.CompanySubtype),
			Text(attrs.Guarantee),
			Text(attrs.IssuerName),
			Text(attrs.IssuerNameAlt),
			Text(attrs.Sector),
			Text(attrs.ISIN),
			Text(attrs.Property),
			Text(attrs.LotQuantity),
			Text(attrs.IFRSClass),
			Text(attrs.ValuationMethod),
			Text(attrs.IssuerCountry),
			Text(attrs.TradingCountry),
			Text(attrs.RegulatedMarket),
			Text(attrs.ValuationSource),
			Num(acquisition),
			Empty(), // accrued interest
			Empty(), // amortized costs
			Num(b.Balance),
			Num(b.Balance),
			Num(b.Balance),
			Text(attrs.Currency),
			Text(attrs.CouponType),
			Empty(), // coupon frequency
			Empty(), // interest rate
			Empty(), // effective interest rate
			Empty(), // purchase date
			Empty(), // maturity date
			Empty(), // rating
			Empty()) // rating agency
	}
}
