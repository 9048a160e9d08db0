// Package realrates computes US real interest rates from public monthly
// series.
//
// The computation is a linear pipeline:
//   - Resolve: the date range, from a fixed start date to today.
//   - Load: each series is fetched from a provider, one after another, and
//     merged by date into a single Table (outer join).
//   - Transform: forward-fill the gaps, derive the CPI year-over-year
//     inflation, derive the real rates (nominal minus inflation), and drop
//     every row that still has a missing value.
//
// The resulting Table is dense and is consumed read-only by the renderer
// package to draw the chart, and by the cmd package to print it.
package realrates
