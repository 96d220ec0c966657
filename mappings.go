package regreport

// TransactionTypeAttrs classifies a ledger posting pattern. Status and
// Change flag whether postings under this key represent point-in-time
// balances, period deltas, or both.
type TransactionTypeAttrs struct {
	Status         bool
	Change         bool
	UnrealizedKind string // TransactionKind label, or ""
	RealizedKind   string // RealizedKind label, or ""
}

// InvestmentAttrs are the descriptive attributes of one security within the
// investment map.
type InvestmentAttrs struct {
	Tag                string
	IFRSClass          string
	ValuationMethod    string
	ValuationMethodAlt string
	FundingSource      string
}

// LookupAttrs are the hand-maintained attributes of the cross-source lookup
// sheets, keyed by account or position.
type LookupAttrs struct {
	FundingSource    string
	BalanceSheetItem string
	CompanyType      string
	CompanySubtype   string
	Guarantee        string
	IssuerName       string
	IssuerNameAlt    string
	IFRSClass        string
	ValuationMethod  string
	IssuerCountry    string
	TradingCountry   string
	RegulatedMarket  string
	ValuationSource  string
	CouponType       string
	Sector           string
	ISIN             string
	Property         string
	Currency         string // currency of account rows; position rows carry their own
	LotQuantity      string // quantity override for account rows, usually empty
}

// MappingSet holds the five reconciled mapping tables plus the free code
// map used to decode source-system currency and agency codes. Keys within a
// single table are unique by construction (they are map keys).
type MappingSet struct {
	TransactionTypes map[string]TransactionTypeAttrs
	InvestmentTypes  map[string]string // key -> Category label
	Investments      map[string]InvestmentAttrs
	Accounts         map[string]LookupAttrs
	Positions        map[string]LookupAttrs
	Codes            map[string]string // not gap-checked; best-effort decode
}

// Code decodes a source-system code, returning the code itself when no
// decode entry exists.
func (m MappingSet) Code(code string) string {
	if v, ok := m.Codes[code]; ok && v != "" {
		return v
	}
	return code
}

// Join attaches mapping attributes to every fact row whose key is covered.
// Uncovered rows keep zero attributes; the reconciler is responsible for
// turning them into gap tables before any aggregation happens.
func (s *Snapshot) Join() {
	for i := range s.Entries {
		e := &s.Entries[i]
		if tt, ok := s.Mappings.TransactionTypes[e.TransactionTypeKey]; ok {
			e.IsStatus = tt.Status
			e.IsChange = tt.Change
			e.UnrealizedKind = tt.UnrealizedKind
			e.RealizedKind = tt.RealizedKind
		}
		if label, ok := s.Mappings.InvestmentTypes[e.InvestmentTypeKey]; ok {
			e.Category = label
		}
		if attrs, ok := s.Mappings.Investments[e.InvestmentKey]; ok {
			e.InvestmentAttrs = attrs
		}
	}
	for i := range s.Transactions {
		t := &s.Transactions[i]
		if attrs, ok := s.Mappings.Investments[t.InvestmentKey]; ok {
			t.Tag = attrs.Tag
		}
		if label, ok := s.Mappings.InvestmentTypes[t.InvestmentTypeKey]; ok {
			t.Category = label
		}
	}
}
