// Package regreport turns raw accounting ledger entries, investment position
// snapshots and a set of hand-maintained mapping tables into the quarterly
// regulatory investment report, and refuses to produce one while the mapping
// tables do not cover every observed fact.
//
// The pipeline is strictly sequential:
//   - Key derivation: composite classification keys are attached to every
//     fact row, one per key space.
//   - Mapping reconciliation: facts whose keys are absent from their mapping
//     table are collected into gap tables; any gap aborts the run before a
//     single report value is computed.
//   - Category aggregation: per investment category (and per tag for the
//     detailed sheets) the engine sums point-in-time balances up to the
//     previous quarter end and period deltas within the current quarter.
//   - Report assembly: aggregated values are joined with descriptive mapping
//     attributes into named rectangular tables with a synthetic totals row.
//
// All loading and persistence is behind the FactSource, MappingSource and
// ArtifactWriter interfaces; the warehouse subpackage provides SQL-backed
// sources and the cmd/qrr packages the command-line driver.
package regreport
