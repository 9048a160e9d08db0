package renderer

import (
	"math"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
)

// Stat summarizes a column.
type Stat struct {
	Column   string
	Latest   float64
	LatestOn date.Date
	Min      float64
	MinOn    date.Date
	Max      float64
	MaxOn    date.Date
	Mean     float64
}

// Share is the share of months where a real rate was negative.
type Share struct {
	Column string
	Months int
	Share  realrates.Percent
}

// Summary is the content of the summary report.
type Summary struct {
	Range    date.Range
	Months   int
	Stats    []Stat
	Negative []Share
}

// NewSummary computes the summary of a transformed table.
//
// Missing values are ignored.
func NewSummary(t *realrates.Table) *Summary {
	s := &Summary{Months: t.Len()}
	if t.Len() == 0 {
		return s
	}
	s.Range = date.Range{From: t.Date(0), To: t.Date(t.Len() - 1)}

	for _, name := range t.Names() {
		values, _ := t.Column(name)
		if stat, ok := newStat(t, name, values); ok {
			s.Stats = append(s.Stats, stat)
		}
	}

	for _, name := range []string{realrates.RealFedFundsColumn, realrates.RealTreasuryColumn} {
		values, ok := t.Column(name)
		if !ok {
			continue
		}
		var n, negative int
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			n++
			if v < 0 {
				negative++
			}
		}
		if n == 0 {
			continue
		}
		s.Negative = append(s.Negative, Share{
			Column: name,
			Months: negative,
			Share:  realrates.Percent(100 * float64(negative) / float64(n)),
		})
	}
	return s
}

// newStat returns false if the column has no value.
func newStat(t *realrates.Table, name string, values []float64) (Stat, bool) {
	stat := Stat{Column: name}
	var n int
	var sum float64
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		on := t.Date(i)
		if n == 0 || v < stat.Min {
			stat.Min, stat.MinOn = v, on
		}
		if n == 0 || v > stat.Max {
			stat.Max, stat.MaxOn = v, on
		}
		stat.Latest, stat.LatestOn = v, on
		sum += v
		n++
	}
	if n == 0 {
		return stat, false
	}
	stat.Mean = sum / float64(n)
	return stat, true
}

// RenderSummary renders the Summary struct to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_stats":    "summary_stats.md",
		"summary_negative": "summary_negative.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
