package realrates

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/etnz/realrates/date"
)

// Table is a time-indexed table of named float64 columns.
//
// Dates are unique and sorted. A missing value is NaN.
type Table struct {
	days    []date.Date
	names   []string // column names in creation order
	columns map[string][]float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{columns: make(map[string][]float64)}
}

// nans returns a slice of n missing values.
func nans(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.days) }

// Names returns the column names in creation order.
func (t *Table) Names() []string { return slices.Clone(t.names) }

// Dates returns a copy of the date index.
func (t *Table) Dates() []date.Date { return slices.Clone(t.days) }

// Date returns the date of row i.
func (t *Table) Date(i int) date.Date { return t.days[i] }

// Has reports whether the column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns a copy of the column values.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(col), true
}

// Value returns the value of column name at row i.
func (t *Table) Value(i int, name string) float64 {
	col, ok := t.columns[name]
	if !ok {
		return math.NaN()
	}
	return col[i]
}

// Rows returns an iterator over the rows, values are in Names() order.
func (t *Table) Rows() iter.Seq2[date.Date, []float64] {
	return func(yield func(date.Date, []float64) bool) {
		row := make([]float64, len(t.names))
		for i, on := range t.days {
			for j, name := range t.names {
				row[j] = t.columns[name][i]
			}
			if !yield(on, row) {
				return
			}
		}
	}
}

// AddSeries merges a series into the table as column name.
//
// Dates are outer joined: dates unknown to the table are inserted with
// missing values in the existing columns, and table dates absent from the
// series are missing in the new column. An existing column with the same name
// is replaced.
func (t *Table) AddSeries(name string, h *date.History[float64]) {
	days := date.Union(t.days, h.Days())
	if len(days) != len(t.days) {
		t.reindex(days)
	}
	col := nans(len(t.days))
	for i, on := range t.days {
		if v, ok := h.Get(on); ok {
			col[i] = v
		}
	}
	t.set(name, col)
}

// reindex realigns every column on days, a superset of the current index.
func (t *Table) reindex(days []date.Date) {
	pos := make(map[date.Date]int, len(t.days))
	for i, on := range t.days {
		pos[on] = i
	}
	for _, name := range t.names {
		old := t.columns[name]
		col := nans(len(days))
		for i, on := range days {
			if j, ok := pos[on]; ok {
				col[i] = old[j]
			}
		}
		t.columns[name] = col
	}
	t.days = days
}

// SetColumn adds or replaces a column. values must have one value per row.
func (t *Table) SetColumn(name string, values []float64) error {
	if len(values) != len(t.days) {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.days))
	}
	t.set(name, slices.Clone(values))
	return nil
}

func (t *Table) set(name string, col []float64) {
	if _, exists := t.columns[name]; !exists {
		t.names = append(t.names, name)
	}
	t.columns[name] = col
}

// column returns the column or a descriptive error.
func (t *Table) column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return col, nil
}
