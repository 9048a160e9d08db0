package renderer

import (
	"math"
	"strconv"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
)

type tableRow struct {
	Date   date.Date
	Values []string
}

type tableView struct {
	Names []string
	Rows  []tableRow
}

// FormatValue formats a table value with two decimals, a missing value is empty.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderTable renders the table to a markdown string, one row per date.
func RenderTable(t *realrates.Table) string {
	view := tableView{Names: t.Names()}
	for on, row := range t.Rows() {
		r := tableRow{Date: on, Values: make([]string, len(row))}
		for i, v := range row {
			r.Values[i] = FormatValue(v)
		}
		view.Rows = append(view.Rows, r)
	}
	return renderTemplate("table", "table.md", nil, view)
}
