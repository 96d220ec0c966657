package regreport

import "fmt"

// Category is one of the nine investment categories of the regulatory
// report. The enumeration is closed; the order is the report's row order.
type Category int

const (
	// LandBuildingsOperating covers land and buildings used for own operations.
	LandBuildingsOperating Category = iota
	// LandBuildingsNonOperating covers land and buildings not used for own operations.
	LandBuildingsNonOperating
	// GroupEquity covers shares and other equity in group companies.
	GroupEquity
	// GroupDebt covers debt securities issued by group companies.
	GroupDebt
	// ShortTermDebt covers external debt securities maturing within one year.
	ShortTermDebt
	// LongTermDebt covers external debt securities maturing in more than one year.
	LongTermDebt
	// OtherEquity covers shares and other equity instruments outside the group.
	OtherEquity
	// FundShares covers shares and units in investment funds.
	FundShares
	// Derivatives covers derivative financial instruments.
	Derivatives
)

// Label returns the category line-item label used in mapping tables and reports.
func (c Category) Label() string {
	switch c {
	case LandBuildingsOperating:
		return "I. Land and buildings used for own operations"
	case LandBuildingsNonOperating:
		return "II. Land and buildings not used for own operations"
	case GroupEquity:
		return "III. Shares and other equity instruments in group subsidiaries, associates and jointly controlled companies"
	case GroupDebt:
		return "IV. Debt securities issued by group companies"
	case ShortTermDebt:
		return "V. Debt securities maturing within one year (except those under IV)"
	case LongTermDebt:
		return "VI. Debt securities maturing in more than one year (except those under IV)"
	case OtherEquity:
		return "VII. Shares and other equity instruments (except those under III)"
	case FundShares:
		return "VIII. Shares and units in investment funds (except those under III)"
	case Derivatives:
		return "IX. Derivative financial instruments"
	default:
		panic(fmt.Sprintf("unknown category %d", c))
	}
}

func (c Category) String() string { return c.Label() }

// AllCategories lists the nine categories in report order.
func AllCategories() []Category {
	return []Category{
		LandBuildingsOperating,
		LandBuildingsNonOperating,
		GroupEquity,
		GroupDebt,
		ShortTermDebt,
		LongTermDebt,
		OtherEquity,
		FundShares,
		Derivatives,
	}
}

// TransactionKind is one of the five transaction kinds driving the
// unrealized-profit aggregation. The enumeration is closed.
type TransactionKind int

const (
	// AccountingValue is the total acquisition cost / accounting value kind.
	AccountingValue TransactionKind = iota
	// RevaluationEffect is the revaluation effect kind.
	RevaluationEffect
	// RevaluationReserve is the revaluation reserve kind. Its status sum is
	// the one value the aggregator negates.
	RevaluationReserve
	// FXDifference is the net exchange rate difference kind.
	FXDifference
	// Amortization is the discount/premium amortization kind.
	Amortization
)

// Label returns the kind label used in the transaction-type mapping table.
func (k TransactionKind) Label() string {
	switch k {
	case AccountingValue:
		return "01 Total acquisition cost/accounting value (as of last valuation date)"
	case RevaluationEffect:
		return "03 Revaluation effect"
	case RevaluationReserve:
		return "04 Revaluation reserve (status)"
	case FXDifference:
		return "06 Net exchange rate difference"
	case Amortization:
		return "07 Amortization of discount/premium on instruments with fixed maturity"
	default:
		panic(fmt.Sprintf("unknown transaction kind %d", k))
	}
}

func (k TransactionKind) String() string { return k.Label() }

// AllTransactionKinds lists the five kinds in report column order.
func AllTransactionKinds() []TransactionKind {
	return []TransactionKind{
		AccountingValue,
		RevaluationEffect,
		RevaluationReserve,
		FXDifference,
		Amortization,
	}
}

// RealizedKind labels the two ledger row kinds feeding the realized-profit
// sheets. Rows of any other kind do not take part in them.
type RealizedKind int

const (
	// BookValue rows carry the accounting value of sold instruments.
	BookValue RealizedKind = iota
	// RealizedPnL rows carry the realized profit or loss.
	RealizedPnL
)

// Label returns the kind label used in the transaction-type mapping table.
func (k RealizedKind) Label() string {
	switch k {
	case BookValue:
		return "Book value"
	case RealizedPnL:
		return "Realized profit (loss)"
	default:
		panic(fmt.Sprintf("unknown realized kind %d", k))
	}
}

func (k RealizedKind) String() string { return k.Label() }
