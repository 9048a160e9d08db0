package date

import (
	"testing"
	"time"
)

func TestPeriod_Key(t *testing.T) {
	testCases := []struct {
		period Period
		on     Date
		want   string
	}{
		{Daily, New(2025, time.September, 8), "2025-09-08"},
		{Weekly, New(2025, time.January, 8), "2025-W02"},
		{Weekly, New(2024, time.December, 30), "2025-W01"},
		{Monthly, New(2025, time.September, 30), "2025-09"},
		{Quarterly, New(2025, time.August, 15), "2025-Q3"},
		{Yearly, New(2025, time.December, 31), "2025"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.period.Key(tc.on); got != tc.want {
				t.Errorf("%v.Key(%v) = %q, want %q", tc.period, tc.on, got, tc.want)
			}
		})
	}

	// Dates of the same month share the monthly key, not the daily one.
	a, b := New(2025, time.October, 1), New(2025, time.October, 31)
	if Monthly.Key(a) != Monthly.Key(b) || Daily.Key(a) == Daily.Key(b) {
		t.Errorf("unexpected keys for %v and %v", a, b)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(1960, time.January, 1), To: New(2025, time.September, 10)}
	testCases := []struct {
		on   Date
		want bool
	}{
		{New(1959, time.December, 31), false},
		{New(1960, time.January, 1), true},
		{New(2000, time.June, 1), true},
		{New(2025, time.September, 10), true},
		{New(2025, time.September, 11), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.on); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.on, got, tc.want)
		}
	}
}

func TestRange_Months(t *testing.T) {
	testCases := []struct {
		in   Range
		want int
	}{
		{Range{New(1960, time.January, 1), New(1960, time.December, 31)}, 12},
		{Range{New(1960, time.January, 1), New(1960, time.January, 1)}, 1},
		{Range{New(1960, time.January, 2), New(1960, time.February, 1)}, 1},
		{Range{New(1960, time.January, 15), New(1960, time.January, 31)}, 0},
		{Range{New(1961, time.January, 1), New(1960, time.January, 1)}, 0},
	}
	for _, tc := range testCases {
		if got := tc.in.Months(); got != tc.want {
			t.Errorf("%v.Months() = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Monthly", Monthly, false},
		{"quarter", Quarterly, false},
		{"yearly", Yearly, false},
		{" Year ", Yearly, false},
		{"unknown", Daily, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
