package regreport

import (
	"time"

	"github.com/kvartal/regreport/date"
)

// Test fixture: one fully mapped snapshot for the 2025-06-30 report date.
// The ledger rows are spread over the three windows so every aggregation
// path has at least one contributing row.

var testReportDate = date.New(2025, time.June, 30)

func eur(v int) Money { return M(v, "EUR") }

func testMappings() MappingSet {
	return MappingSet{
		TransactionTypes: map[string]TransactionTypeAttrs{
			BuildKey("030", "VPS", "NAL"): {Status: true, Change: true, UnrealizedKind: AccountingValue.Label()},
			BuildKey("095", "VPS", "NAL"): {Status: true, Change: true, UnrealizedKind: RevaluationReserve.Label()},
			BuildKey("720", "VPS", "NAL"): {Status: true, RealizedKind: BookValue.Label()},
			BuildKey("721", "VPS", "NAL"): {Status: true, RealizedKind: RealizedPnL.Label()},
		},
		InvestmentTypes: map[string]string{
			BuildKey("VPS", "LT"): FundShares.Label(),
		},
		Investments: map[string]InvestmentAttrs{
			BuildKey("SI0001", "VPS"): {
				Tag:             "Global Fund",
				IFRSClass:       "FVTPL",
				ValuationMethod: "market price",
				FundingSource:   "Own funds",
			},
		},
		Accounts: map[string]LookupAttrs{
			BuildKey("020300", "", "Shares in subsidiaries"): {
				FundingSource: "Own funds",
				IssuerName:    "Subsidiary d.o.o.",
				Currency:      "EUR",
			},
		},
		Positions: map[string]LookupAttrs{
			BuildKey("SI0001", "VPS", "LT"): {
				FundingSource: "Own funds",
				IssuerName:    "Global Fund",
				IFRSClass:     "FVTPL",
			},
		},
		Codes: map[string]string{
			"978": "EUR",
			"33":  "S&P",
		},
	}
}

func testSnapshot() *Snapshot {
	entry := func(on date.Date, group string, debit, credit Money) LedgerEntry {
		return LedgerEntry{
			BookingDate:  on,
			Account:      group + "001",
			GroupAccount: group,
			SecurityType: "VPS",
			SecurityID:   "SI0001",
			Investments:  "NAL",
			Purpose:      "trading",
			Duration:     "LT",
			DebitBase:    debit,
			CreditBase:   credit,
		}
	}
	return &Snapshot{
		Entries: []LedgerEntry{
			// status window, accounting value
			entry(date.New(2025, time.February, 15), "030", eur(1000), eur(0)),
			// change window and report month, accounting value
			entry(date.New(2025, time.June, 10), "030", eur(200), eur(0)),
			// status window, revaluation reserve
			entry(date.New(2025, time.February, 20), "095", eur(0), eur(30)),
			// change window, revaluation reserve
			entry(date.New(2025, time.May, 20), "095", eur(0), eur(50)),
			// realized window, book value of sold instruments
			entry(date.New(2025, time.March, 1), "720", eur(300), eur(0)),
			// realized window, realized profit booked as credit
			entry(date.New(2025, time.April, 15), "721", eur(0), eur(40)),
		},
		Transactions: []SecurityTransaction{
			{
				ReportDate:   testReportDate,
				SecurityID:   "SI0001",
				SecurityType: "VPS",
				Duration:     "LT",
				Nominal:      Q(10),
			},
		},
		Positions: []Position{
			{
				ReportDate:        testReportDate,
				InvestmentType:    "VPS",
				Name:              "Global Fund",
				ISIN:              "SI0031101234",
				SecurityID:        "SI0001",
				Duration:          "LT",
				LotNominal:        Q(1),
				Quantity:          Q(250),
				QuotationCurrency: "978",
				AcquisitionValue:  eur(900),
				BookValue:         eur(1000),
				BookValueQC:       M(1000, ""),
				AccruedInterest:   eur(10),
				AccruedInterestQC: M(10, ""),
				MarketValue:       eur(1100),
				PurchaseDate:      date.New(2024, time.November, 5),
				Rating:            "AA",
				RatingAgency:      "33",
			},
		},
		Accounts: []AccountBalance{
			{
				No:            "020300",
				Name:          "Shares in subsidiaries",
				Balance:       eur(500),
				LatestPosting: date.New(2025, time.June, 15),
			},
		},
		Mappings:     testMappings(),
		BaseCurrency: "EUR",
	}
}

// preparedSnapshot returns the fixture with keys derived and mappings joined,
// as the aggregator expects it.
func preparedSnapshot() *Snapshot {
	s := testSnapshot()
	s.DeriveKeys()
	s.Join()
	return s
}
