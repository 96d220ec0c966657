package regreport

import (
	"fmt"
	"strings"
	"time"
)

// DataAbsenceError reports that a required temporal filter returned no rows
// for the report period. It signals upstream staleness, not a mapping gap,
// and aborts the run before any artifact is produced.
type DataAbsenceError struct {
	Table  string
	Column string
	Year   int
	Month  time.Month
}

func (e *DataAbsenceError) Error() string {
	return fmt.Sprintf("no data found in table %s for year %d and month %d in column %q",
		e.Table, e.Year, int(e.Month), e.Column)
}

// MappingGapError reports that one or more key spaces have fact keys with no
// mapping entry. The run's sole output is the gap artifact; a human updates
// the mapping tables and reruns.
type MappingGapError struct {
	Spaces []KeySpace
}

func (e *MappingGapError) Error() string {
	names := make([]string, len(e.Spaces))
	for i, s := range e.Spaces {
		names[i] = s.String()
	}
	return fmt.Sprintf("mapping tables do not cover all facts (%s): update mappings and rerun",
		strings.Join(names, ", "))
}

// SchemaError reports that an external source returned a table without an
// expected column.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s is missing expected column %q", e.Table, e.Column)
}
