package realrates

import (
	"time"

	"github.com/etnz/realrates/date"
)

// Column names of the Table, in creation order.
const (
	FedFundsColumn     = "Federal Funds Rate"
	Treasury10YColumn  = "10-Year Treasury Yield"
	CPIColumn          = "CPI (All Urban Consumers)"
	InflationColumn    = "CPI Inflation YoY (%)"
	RealFedFundsColumn = "Real Fed Funds Rate (%)"
	RealTreasuryColumn = "Real 10Y Treasury Rate (%)"
)

// InflationLag is the number of rows looked back to compute the year-over-year inflation.
//
// The lookback is positional: on monthly series it is one year only if no month is missing.
const InflationLag = 12

// DefaultStart is the first date requested from the providers.
var DefaultStart = date.New(1960, time.January, 1)

// Series identifies a provider series and the Table column it fills.
type Series struct {
	Code string // provider code, e.g. "FEDFUNDS" or "INSEE-001763852"
	Name string // column name
}

// DefaultSeries returns the three FRED series in fetch order.
func DefaultSeries() []Series {
	return []Series{
		{Code: "FEDFUNDS", Name: FedFundsColumn},
		{Code: "GS10", Name: Treasury10YColumn},
		{Code: "CPIAUCSL", Name: CPIColumn},
	}
}

// Resolve returns the closed range from start to today.
func Resolve(start date.Date) date.Range {
	return date.Range{From: start, To: date.Today()}
}
