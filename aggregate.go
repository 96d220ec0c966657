package regreport

import "sort"

// Aggregator computes the windowed category sums of one run. It slices the
// joined ledger once into the three temporal views and serves every category
// and tag from those immutable slices; there is no shared mutable state
// between categories.
type Aggregator struct {
	dates Dates
	base  string

	status   []LedgerEntry // booked on or before the previous quarter end, status rows
	change   []LedgerEntry // booked within the current quarter window, change rows
	realized []LedgerEntry // booked between year start and report date, any kind

	transactions []SecurityTransaction
}

// NewAggregator slices the snapshot into the status, change and realized
// views. The snapshot must have passed reconciliation: unmapped rows would
// silently fall out of every category here.
func NewAggregator(s *Snapshot, dates Dates) *Aggregator {
	a := &Aggregator{dates: dates, base: s.BaseCurrency, transactions: s.Transactions}
	for _, e := range s.Entries {
		if e.IsStatus && dates.StatusWindow(e.BookingDate) {
			a.status = append(a.status, e)
		}
		if e.IsChange && dates.ChangeWindow(e.BookingDate) {
			a.change = append(a.change, e)
		}
		if dates.RealizedWindow(e.BookingDate) {
			a.realized = append(a.realized, e)
		}
	}
	return a
}

func (a *Aggregator) zero() Money { return M(0, a.base) }

// KindValues holds the two windowed sums of each transaction kind for one
// category or tag. ReserveStatus is stored already negated: the mapping
// balances carry the opposite sign to the report sign for that one value.
type KindValues struct {
	BuySellStatus      Money
	BuySellChange      Money
	RevaluationStatus  Money
	RevaluationChange  Money
	ReserveStatus      Money // negated status sum
	ReserveChange      Money
	FXStatus           Money
	FXChange           Money
	AmortizationStatus Money
	AmortizationChange Money
}

// AccountingValue is the acquisition-cost line: status plus change of the
// accounting-value kind.
func (v KindValues) AccountingValue() Money { return v.BuySellStatus.Add(v.BuySellChange) }

// RevaluationEffect combines the current-quarter reserve and revaluation changes.
func (v KindValues) RevaluationEffect() Money { return v.ReserveChange.Add(v.RevaluationChange) }

// Reserve is the revaluation-reserve line: negated status plus change.
func (v KindValues) Reserve() Money { return v.ReserveStatus.Add(v.ReserveChange) }

// FX is the net exchange rate difference line.
func (v KindValues) FX() Money { return v.FXStatus.Add(v.FXChange) }

// Amortization is the discount/premium amortization line.
func (v KindValues) Amortization() Money { return v.AmortizationStatus.Add(v.AmortizationChange) }

// ObjectiveValue is the derived fair-value line. It is defined only through
// its five additive components; there is no independent computation path.
func (v KindValues) ObjectiveValue() Money {
	return v.BuySellStatus.
		Add(v.BuySellChange).
		Add(v.RevaluationEffect()).
		Add(v.FXStatus).
		Add(v.FXChange).
		Add(v.AmortizationStatus).
		Add(v.AmortizationChange)
}

// Values computes the five-kind, two-window sums for one category, or for
// one tag beneath it when tag is non-empty. Sums over an empty filtered
// subset are exactly zero.
func (a *Aggregator) Values(cat Category, tag string) KindValues {
	return KindValues{
		BuySellStatus:      a.sumStatus(AccountingValue, cat, tag),
		BuySellChange:      a.sumChange(AccountingValue, cat, tag),
		RevaluationStatus:  a.sumStatus(RevaluationEffect, cat, tag),
		RevaluationChange:  a.sumChange(RevaluationEffect, cat, tag),
		ReserveStatus:      a.sumStatus(RevaluationReserve, cat, tag).Neg(),
		ReserveChange:      a.sumChange(RevaluationReserve, cat, tag),
		FXStatus:           a.sumStatus(FXDifference, cat, tag),
		FXChange:           a.sumChange(FXDifference, cat, tag),
		AmortizationStatus: a.sumStatus(Amortization, cat, tag),
		AmortizationChange: a.sumChange(Amortization, cat, tag),
	}
}

func (a *Aggregator) sumStatus(kind TransactionKind, cat Category, tag string) Money {
	sum := a.zero()
	for _, e := range a.status {
		if e.UnrealizedKind != kind.Label() || e.Category != cat.Label() {
			continue
		}
		if tag != "" && e.Tag != tag {
			continue
		}
		sum = sum.Add(e.StatusBalance)
	}
	return sum
}

func (a *Aggregator) sumChange(kind TransactionKind, cat Category, tag string) Money {
	sum := a.zero()
	for _, e := range a.change {
		if e.UnrealizedKind != kind.Label() || e.Category != cat.Label() {
			continue
		}
		if tag != "" && e.Tag != tag {
			continue
		}
		sum = sum.Add(e.ChangeBalance)
	}
	return sum
}

// Tags lists the distinct tags of a category, sorted. The tag universe of
// the detailed sheets is the current-quarter change slice.
func (a *Aggregator) Tags(cat Category) []string {
	return distinctTags(a.change, cat)
}

// TagAttrs returns the descriptive attributes of a tag. Policy: the first
// row in source order wins; rows sharing a tag are assumed to agree.
func (a *Aggregator) TagAttrs(cat Category, tag string) InvestmentAttrs {
	return firstAttrs(a.change, cat, tag)
}

// RealizedValues holds the year-to-date realized sums of one category or tag.
type RealizedValues struct {
	Shares          Quantity
	AccountingValue Money
	PnL             Money
}

// SellValue is the derived sale proceeds: accounting value plus realized
// profit (loss).
func (v RealizedValues) SellValue() Money { return v.AccountingValue.Add(v.PnL) }

// Realized computes the year-to-date realized sums for one category, or for
// one tag beneath it when tag is non-empty. The realized profit sign is
// flipped: the ledger books profits as credits.
func (a *Aggregator) Realized(cat Category, tag string) RealizedValues {
	v := RealizedValues{Shares: Quantity{}, AccountingValue: a.zero(), PnL: a.zero()}
	for _, e := range a.realized {
		if e.Category != cat.Label() {
			continue
		}
		if tag != "" && e.Tag != tag {
			continue
		}
		switch e.RealizedKind {
		case BookValue.Label():
			v.AccountingValue = v.AccountingValue.Add(e.StatusBalance)
		case RealizedPnL.Label():
			v.PnL = v.PnL.Sub(e.StatusBalance)
		}
	}
	for _, t := range a.transactions {
		if t.Category != cat.Label() {
			continue
		}
		if tag != "" && t.Tag != tag {
			continue
		}
		v.Shares = v.Shares.Add(t.Nominal)
	}
	return v
}

// RealizedTags lists the distinct tags of a category within the realized
// window, sorted.
func (a *Aggregator) RealizedTags(cat Category) []string {
	return distinctTags(a.realized, cat)
}

// RealizedTagAttrs returns the descriptive attributes of a tag within the
// realized window, first row in source order.
func (a *Aggregator) RealizedTagAttrs(cat Category, tag string) InvestmentAttrs {
	return firstAttrs(a.realized, cat, tag)
}

func distinctTags(rows []LedgerEntry, cat Category) []string {
	set := make(map[string]bool)
	for _, e := range rows {
		if e.Category == cat.Label() {
			set[e.Tag] = true
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func firstAttrs(rows []LedgerEntry, cat Category, tag string) InvestmentAttrs {
	for _, e := range rows {
		if e.Category == cat.Label() && e.Tag == tag {
			return e.InvestmentAttrs
		}
	}
	return InvestmentAttrs{}
}
