package date

import "fmt"

// Range is an inclusive span of days.
type Range struct{ From, To Date }

// NewRange returns the range of the period containing d.
func NewRange(d Date, p Period) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// Contains reports whether on falls within the range, boundaries included.
func (r Range) Contains(on Date) bool { return !on.Before(r.From) && !on.After(r.To) }

// Period identifies the standard period the range spans exactly, if any.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if r.From.StartOf(p) == r.From && r.From.EndOf(p) == r.To {
			return p, true
		}
	}
	return Daily, false
}

// Identifier returns a short stable name for the range, suitable for file
// and directory names: "2025-Q2" for a quarter, "2025-06" for a month,
// "2025-06-02_2025-06-10" for a free-form range.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (int(r.From.Month())-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String()
	}
}
