package regreport

import (
	"fmt"

	"github.com/kvartal/regreport/date"
)

// Dates holds the single report date and the three boundaries derived from
// it. They are computed once per run and every temporal filter of the run
// uses these same four values.
type Dates struct {
	Report         date.Date // report date, a quarter end by external policy
	YearStart      date.Date // first day of the report date's year
	PrevQuarterEnd date.Date // last day of the quarter before the report quarter
	QuarterStart   date.Date // first day of the report quarter
}

// NewDates derives the window boundaries from the injected report date. The
// report date itself is externally computed; this package never decides
// calendar policy.
func NewDates(report date.Date) Dates {
	start := report.StartOf(date.Quarterly)
	return Dates{
		Report:         report,
		YearStart:      report.StartOf(date.Yearly),
		PrevQuarterEnd: start.Add(-1),
		QuarterStart:   start,
	}
}

// StatusWindow reports whether a booking date takes part in the
// as-of-previous-quarter status sums.
func (d Dates) StatusWindow(on date.Date) bool { return !on.After(d.PrevQuarterEnd) }

// ChangeWindow reports whether a booking date takes part in the
// within-current-quarter change sums. Both boundaries are included.
func (d Dates) ChangeWindow(on date.Date) bool {
	return date.Range{From: d.QuarterStart, To: d.Report}.Contains(on)
}

// RealizedWindow reports whether a booking date takes part in the
// year-to-date realized sums. Both boundaries are included.
func (d Dates) RealizedWindow(on date.Date) bool {
	return date.Range{From: d.YearStart, To: d.Report}.Contains(on)
}

func (d Dates) String() string {
	return fmt.Sprintf("report %s (year start %s, previous quarter end %s, quarter start %s)",
		d.Report, d.YearStart, d.PrevQuarterEnd, d.QuarterStart)
}
