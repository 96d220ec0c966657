package date

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	testCases := []struct {
		name string
		p    Period
		in   Date
		want Range
	}{
		{
			name: "a single day",
			p:    Daily,
			in:   New(2025, time.June, 30),
			want: Range{From: New(2025, time.June, 30), To: New(2025, time.June, 30)},
		},
		{
			name: "week of a wednesday",
			p:    Weekly,
			in:   New(2025, time.September, 10),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name: "leap february",
			p:    Monthly,
			in:   New(2024, time.February, 15),
			want: Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name: "second quarter",
			p:    Quarterly,
			in:   New(2025, time.May, 20),
			want: Range{From: New(2025, time.April, 1), To: New(2025, time.June, 30)},
		},
		{
			name: "fourth quarter",
			p:    Quarterly,
			in:   New(2025, time.December, 31),
			want: Range{From: New(2025, time.October, 1), To: New(2025, time.December, 31)},
		},
		{
			name: "whole year",
			p:    Yearly,
			in:   New(2025, time.September, 8),
			want: Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Range(tc.in); got != tc.want {
				t.Errorf("Range() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRangeIdentifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"daily", Daily.Range(New(2025, time.September, 8)), "2025-09-08"},
		{"weekly", Weekly.Range(New(2025, time.September, 8)), "2025-W37"},
		{"monthly", Monthly.Range(New(2025, time.September, 1)), "2025-09"},
		{"quarterly", Quarterly.Range(New(2025, time.July, 1)), "2025-Q3"},
		{"yearly", Yearly.Range(New(2025, time.January, 1)), "2025"},
		{"custom", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"quarter", Quarterly, false},
		{"Quarterly", Quarterly, false},
		{"year", Yearly, false},
		{"fortnight", Daily, true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
