package regreport

import (
	"testing"
	"time"

	"github.com/kvartal/regreport/date"
)

func TestNewDates(t *testing.T) {
	d := NewDates(testReportDate)
	if want := date.New(2025, time.January, 1); d.YearStart != want {
		t.Errorf("YearStart = %s, want %s", d.YearStart, want)
	}
	if want := date.New(2025, time.April, 1); d.QuarterStart != want {
		t.Errorf("QuarterStart = %s, want %s", d.QuarterStart, want)
	}
	if want := date.New(2025, time.March, 31); d.PrevQuarterEnd != want {
		t.Errorf("PrevQuarterEnd = %s, want %s", d.PrevQuarterEnd, want)
	}
}

func TestWindows(t *testing.T) {
	d := NewDates(testReportDate)
	testCases := []struct {
		on                        date.Date
		status, change, realized bool
	}{
		{date.New(2024, time.December, 31), true, false, false},
		{date.New(2025, time.January, 1), true, false, true},
		{date.New(2025, time.March, 31), true, false, true},
		{date.New(2025, time.April, 1), false, true, true},
		{date.New(2025, time.June, 30), false, true, true},
		{date.New(2025, time.July, 1), false, false, false},
	}
	for _, tc := range testCases {
		if got := d.StatusWindow(tc.on); got != tc.status {
			t.Errorf("StatusWindow(%s) = %v, want %v", tc.on, got, tc.status)
		}
		if got := d.ChangeWindow(tc.on); got != tc.change {
			t.Errorf("ChangeWindow(%s) = %v, want %v", tc.on, got, tc.change)
		}
		if got := d.RealizedWindow(tc.on); got != tc.realized {
			t.Errorf("RealizedWindow(%s) = %v, want %v", tc.on, got, tc.realized)
		}
	}
}
