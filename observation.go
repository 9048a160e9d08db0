package realrates

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseObservation parses a provider value. FRED writes "." for a missing
// observation, other providers leave it empty: both are returned as NaN.
func ParseObservation(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return math.NaN(), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return math.NaN(), fmt.Errorf("invalid observation %q: %w", s, err)
	}
	f, _ := d.Float64()
	return f, nil
}
