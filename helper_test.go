package realrates

import (
	"math"
	"time"

	"github.com/etnz/realrates/date"
)

// jan1960 is the first month of the synthetic series.
var jan1960 = date.New(1960, time.January, 1)

// monthly is a helper for test to create a monthly history starting at start.
// NaN values are kept as missing observations.
func monthly(start date.Date, values ...float64) *date.History[float64] {
	h := new(date.History[float64])
	for i, v := range values {
		h.Append(start.AddMonths(i), v)
	}
	return h
}

// constant returns n times v.
func constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// linear returns n values from v0, increasing by step.
func linear(n int, v0, step float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v0 + float64(i)*step
	}
	return s
}

// rawTable returns a table with the three raw series, as loaded.
func rawTable(fedFunds, treasury, cpi *date.History[float64]) *Table {
	t := NewTable()
	t.AddSeries(FedFundsColumn, fedFunds)
	t.AddSeries(Treasury10YColumn, treasury)
	t.AddSeries(CPIColumn, cpi)
	return t
}

// isDense reports whether no value of t is missing.
func isDense(t *Table) bool {
	for _, row := range t.Rows() {
		for _, v := range row {
			if math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}
