package regreport

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kvartal/regreport/date"
)

// Pipeline wires a fact source and a mapping source into the sequential run:
// load, presence checks, key derivation, reconciliation gate, aggregation,
// assembly. It holds no state between runs.
type Pipeline struct {
	Facts        FactSource
	Mappings     MappingSource
	BaseCurrency string
}

// Result is what one run produced. At most one of the two artifact fields is
// set: Report on a successful Run, Gaps when the reconciliation gate fired,
// neither on a clean Check.
type Result struct {
	RunID  string
	Dates  Dates
	Report *Artifact
	Gaps   *Artifact
}

// Run executes one complete reporting run for the given report date.
//
// When the mapping tables do not cover every fact key, Run returns the gap
// artifact in Result.Gaps together with a *MappingGapError; no report tables
// are assembled in that case. Any other error aborts the run with a nil
// Result.
func (p *Pipeline) Run(ctx context.Context, report date.Date) (*Result, error) {
	res, s, err := p.gate(ctx, report)
	if err != nil {
		return nil, err
	}
	if res.Gaps != nil {
		return res, &MappingGapError{Spaces: Gapped(res.Gaps.Tables)}
	}
	dates := res.Dates

	s.Join()
	a := NewAggregator(s, dates)
	res.Report = &Artifact{
		RunID:  res.RunID,
		Kind:   ReportArtifact,
		On:     dates.Report,
		Tables: Assemble(s, a, dates),
	}
	return res, nil
}

// Check runs only the load and reconciliation stages: it answers whether the
// mapping tables cover every fact key for the given report date without
// assembling any report. Result.Gaps is nil when coverage is complete.
func (p *Pipeline) Check(ctx context.Context, report date.Date) (*Result, error) {
	res, _, err := p.gate(ctx, report)
	return res, err
}

// gate loads the snapshot, derives keys and runs the reconciliation. When
// gaps exist they are attached to the result and the snapshot must not be
// aggregated.
func (p *Pipeline) gate(ctx context.Context, report date.Date) (*Result, *Snapshot, error) {
	dates := NewDates(report)
	res := &Result{RunID: uuid.NewString(), Dates: dates}
	log.Printf("run %s: %s", res.RunID, dates)

	s, err := p.load(ctx, dates)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("run %s: loaded %d ledger entries, %d transactions, %d positions, %d accounts",
		res.RunID, len(s.Entries), len(s.Transactions), len(s.Positions), len(s.Accounts))

	s.DeriveKeys()

	gaps := Reconcile(s)
	if len(Gapped(gaps)) > 0 {
		res.Gaps = &Artifact{RunID: res.RunID, Kind: GapArtifact, On: dates.Report, Tables: gaps}
	}
	return res, s, nil
}

// load fetches every table and verifies each carries rows for the report
// period before any derivation starts. A stale source aborts the whole run;
// a partial report is worse than no report.
func (p *Pipeline) load(ctx context.Context, dates Dates) (*Snapshot, error) {
	mappings, err := p.Mappings.Mappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading mappings: %w", err)
	}
	entries, err := p.Facts.LedgerEntries(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("loading ledger entries: %w", err)
	}
	transactions, err := p.Facts.SecurityTransactions(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("loading security transactions: %w", err)
	}
	positions, err := p.Facts.Positions(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("loading positions: %w", err)
	}
	accounts, err := p.Facts.AccountBalances(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("loading account balances: %w", err)
	}

	s := &Snapshot{
		Entries:      entries,
		Transactions: transactions,
		Positions:    positions,
		Accounts:     accounts,
		Mappings:     mappings,
		BaseCurrency: p.BaseCurrency,
	}
	if err := s.checkPresence(dates); err != nil {
		return nil, err
	}
	return s, nil
}

// checkPresence verifies that every fact table carries at least one row dated
// in the report month. Empty filter results mean the source has not been
// refreshed for the period yet.
func (s *Snapshot) checkPresence(dates Dates) error {
	absent := func(table, column string) *DataAbsenceError {
		return &DataAbsenceError{
			Table:  table,
			Column: column,
			Year:   dates.Report.Year(),
			Month:  dates.Report.Month(),
		}
	}
	inReportMonth := func(d date.Date) bool {
		return d.Year() == dates.Report.Year() && d.Month() == dates.Report.Month()
	}

	found := false
	for _, e := range s.Entries {
		if inReportMonth(e.BookingDate) {
			found = true
			break
		}
	}
	if !found {
		return absent("ledger entries", "booking date")
	}

	found = false
	for _, t := range s.Transactions {
		if inReportMonth(t.ReportDate) {
			found = true
			break
		}
	}
	if !found {
		return absent("security transactions", "report date")
	}

	found = false
	for _, p := range s.Positions {
		if inReportMonth(p.ReportDate) {
			found = true
			break
		}
	}
	if !found {
		return absent("positions", "report date")
	}

	found = false
	for _, a := range s.Accounts {
		if inReportMonth(a.LatestPosting) {
			found = true
			break
		}
	}
	if !found {
		return absent("account balances", "latest posting")
	}
	return nil
}
