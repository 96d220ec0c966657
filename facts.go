package regreport

import (
	"github.com/kvartal/regreport/date"
)

// LedgerEntry is one raw general-ledger fact row, plus the columns the
// pipeline derives from it. Raw fields are immutable once loaded; derived
// fields are attached by DeriveKeys and the mapping join, they never replace
// a raw field.
type LedgerEntry struct {
	BookingDate  date.Date
	Account      string
	GroupAccount string
	SecurityType string
	SecurityID   string
	Investments  string // investment marker of the posting
	Purpose      string
	Duration     string // "LT" or "ST"
	Debit        Money  // original currency
	Credit       Money  // original currency
	DebitBase    Money  // base currency
	CreditBase   Money  // base currency

	// Derived by the pipeline.
	StatusBalance Money // debit - credit, base currency
	ChangeBalance Money // -StatusBalance

	TransactionTypeKey string // GroupAccount + SecurityType + Investments
	InvestmentTypeKey  string // SecurityType + Duration
	InvestmentKey      string // SecurityID + SecurityType

	// Joined from the mapping tables.
	IsStatus       bool   // row is a point-in-time balance
	IsChange       bool   // row is a period delta
	UnrealizedKind string // TransactionKind label, or ""
	RealizedKind   string // RealizedKind label, or ""
	Category       string // Category label from the investment-type map
	InvestmentAttrs
}

// SecurityTransaction is one trade row carrying the share count used by the
// realized-profit sheets.
type SecurityTransaction struct {
	ReportDate   date.Date
	SecurityID   string
	SecurityType string
	Duration     string
	Nominal      Quantity

	// Derived and joined.
	InvestmentKey     string
	InvestmentTypeKey string
	Tag               string
	Category          string
}

// Position is one investment position row as of the report date.
type Position struct {
	ReportDate        date.Date
	InvestmentType    string
	IFRSGroup         string
	Name              string
	ISIN              string
	SecurityID        string
	Duration          string
	LotNominal        Quantity // nominal value of one lot, quotation currency
	Quantity          Quantity
	QuotationCurrency string // source system currency code, decoded via the code map
	AcquisitionValue  Money
	BookValue         Money
	BookValueQC       Money // quotation currency
	AccruedInterest   Money
	AccruedInterestQC Money // quotation currency
	MarketValue       Money
	CouponRate        string
	CouponFrequency   string
	EffectiveRate     string
	PurchaseDate      date.Date
	MaturityDate      date.Date
	Rating            string
	RatingAgency      string // source system agency code, decoded via the code map

	// Derived.
	PositionKey string // SecurityID + InvestmentType + Duration
}

// AccountingValue is the position's book value plus accrued interest.
func (p Position) AccountingValue() Money { return p.BookValue.Add(p.AccruedInterest) }

// AccountingValueQC is AccountingValue in the quotation currency.
func (p Position) AccountingValueQC() Money { return p.BookValueQC.Add(p.AccruedInterestQC) }

// AccountBalance is one general-ledger account with its balance summed up to
// the report date.
type AccountBalance struct {
	No            string
	No2           string
	Name          string
	Balance       Money
	LatestPosting date.Date // most recent posting contributing to the balance

	// Derived.
	AccountKey string // No + No2 + Name
}

// Snapshot is the immutable set of loaded tables one run operates on.
// The pipeline derives keys and joins mapping attributes in place before
// handing the snapshot to the reconciler and the aggregator.
type Snapshot struct {
	Entries      []LedgerEntry
	Transactions []SecurityTransaction
	Positions    []Position
	Accounts     []AccountBalance
	Mappings     MappingSet
	BaseCurrency string
}

// DeriveKeys attaches the composite keys and the status/change balances to
// every fact row. It must run before Join and Reconcile.
func (s *Snapshot) DeriveKeys() {
	for i := range s.Entries {
		e := &s.Entries[i]
		e.StatusBalance = e.DebitBase.Sub(e.CreditBase)
		e.ChangeBalance = e.StatusBalance.Neg()
		e.TransactionTypeKey = BuildKey(e.GroupAccount, e.SecurityType, e.Investments)
		e.InvestmentTypeKey = BuildKey(e.SecurityType, e.Duration)
		e.InvestmentKey = BuildKey(e.SecurityID, e.SecurityType)
	}
	for i := range s.Transactions {
		t := &s.Transactions[i]
		t.InvestmentKey = BuildKey(t.SecurityID, t.SecurityType)
		t.InvestmentTypeKey = BuildKey(t.SecurityType, t.Duration)
	}
	for i := range s.Positions {
		p := &s.Positions[i]
		p.PositionKey = BuildKey(p.SecurityID, p.InvestmentType, p.Duration)
	}
	for i := range s.Accounts {
		a := &s.Accounts[i]
		a.AccountKey = BuildKey(a.No, a.No2, a.Name)
	}
}
