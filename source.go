package regreport

import "context"

// FactSource provides the raw fact tables of one reporting period. Calls are
// blocking and made once per run; implementations must apply the temporal
// filters described by the Dates they receive.
type FactSource interface {
	// LedgerEntries returns ledger rows booked on or before the report date.
	LedgerEntries(ctx context.Context, dates Dates) ([]LedgerEntry, error)
	// SecurityTransactions returns trade rows dated between the start of
	// the year and the report date, both inclusive.
	SecurityTransactions(ctx context.Context, dates Dates) ([]SecurityTransaction, error)
	// Positions returns the position snapshot dated exactly on the report
	// date, one row per investment position.
	Positions(ctx context.Context, dates Dates) ([]Position, error)
	// AccountBalances returns ledger account balances summed up to the report date.
	AccountBalances(ctx context.Context, dates Dates) ([]AccountBalance, error)
}

// MappingSource provides the five hand-maintained mapping tables plus the
// free code map. Keys within each table are unique.
type MappingSource interface {
	Mappings(ctx context.Context) (MappingSet, error)
}

// ArtifactWriter persists a run artifact (the report tables, or the gap
// tables of an aborted run). Spreadsheet formatting, paths and retention are
// the writer's business, not the pipeline's.
type ArtifactWriter interface {
	Write(a *Artifact) error
}
