package realrates

import (
	"fmt"
	"math"
)

// FFill replaces, in every column, each missing value by the most recent
// non missing value before it. Leading missing values are left as is.
func (t *Table) FFill() {
	for _, name := range t.names {
		col := t.columns[name]
		last := math.NaN()
		for i, v := range col {
			if math.IsNaN(v) {
				col[i] = last
				continue
			}
			last = v
		}
	}
}

// PctChange sets column dst to the change of src over the given number of
// rows, multiplied by scale:
//
//	dst[i] = (src[i]/src[i-periods] - 1) * scale
//
// The first periods rows are missing.
func (t *Table) PctChange(src, dst string, periods int, scale float64) error {
	if periods <= 0 {
		return fmt.Errorf("invalid number of periods %d", periods)
	}
	s, err := t.column(src)
	if err != nil {
		return err
	}
	res := nans(len(s))
	for i := periods; i < len(s); i++ {
		res[i] = (s[i]/s[i-periods] - 1) * scale
	}
	t.set(dst, res)
	return nil
}

// Sub sets column dst to a - b, row by row.
func (t *Table) Sub(dst, a, b string) error {
	x, err := t.column(a)
	if err != nil {
		return err
	}
	y, err := t.column(b)
	if err != nil {
		return err
	}
	res := make([]float64, len(x))
	for i := range x {
		res[i] = x[i] - y[i]
	}
	t.set(dst, res)
	return nil
}

// DropNA removes every row that has a missing value in at least one column.
func (t *Table) DropNA() {
	keep := 0
	for i := range t.days {
		if t.complete(i) {
			t.days[keep] = t.days[i]
			for _, name := range t.names {
				t.columns[name][keep] = t.columns[name][i]
			}
			keep++
		}
	}
	t.days = t.days[:keep]
	for _, name := range t.names {
		t.columns[name] = t.columns[name][:keep]
	}
}

// complete reports whether row i has no missing value.
func (t *Table) complete(i int) bool {
	for _, name := range t.names {
		if math.IsNaN(t.columns[name][i]) {
			return false
		}
	}
	return true
}

// Transform derives the inflation and real rate columns from the raw series.
//
// The order matters: gaps are filled before deriving, and incomplete rows are
// dropped last.
func Transform(t *Table) error {
	t.FFill()
	if err := t.PctChange(CPIColumn, InflationColumn, InflationLag, 100); err != nil {
		return fmt.Errorf("cannot compute inflation: %w", err)
	}
	if err := t.Sub(RealFedFundsColumn, FedFundsColumn, InflationColumn); err != nil {
		return fmt.Errorf("cannot compute real fed funds rate: %w", err)
	}
	if err := t.Sub(RealTreasuryColumn, Treasury10YColumn, InflationColumn); err != nil {
		return fmt.Errorf("cannot compute real 10-year rate: %w", err)
	}
	t.DropNA()
	return nil
}
