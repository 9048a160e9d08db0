package realrates

import (
	"fmt"
	"log"
	"strings"

	"github.com/etnz/realrates/date"
)

// Fetcher retrieves a monthly series by code over a date range.
type Fetcher interface {
	Fetch(code string, r date.Range) (*date.History[float64], error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(code string, r date.Range) (*date.History[float64], error)

func (f FetcherFunc) Fetch(code string, r date.Range) (*date.History[float64], error) {
	return f(code, r)
}

// Router dispatches a code to the provider registered for its prefix, and
// to Default otherwise. The prefix is part of the code the provider receives.
type Router struct {
	Default  Fetcher
	Prefixed map[string]Fetcher // e.g. "INSEE-"
}

func (r *Router) Fetch(code string, rg date.Range) (*date.History[float64], error) {
	for prefix, f := range r.Prefixed {
		if strings.HasPrefix(code, prefix) {
			return f.Fetch(code, rg)
		}
	}
	if r.Default == nil {
		return nil, fmt.Errorf("no provider for series %q", code)
	}
	return r.Default.Fetch(code, rg)
}

// Load fetches every series, one after the other, and merges them by date.
//
// The first failure aborts the load, a series without any observation is a
// failure.
func Load(f Fetcher, r date.Range, series ...Series) (*Table, error) {
	t := NewTable()
	for _, s := range series {
		h, err := f.Fetch(s.Code, r)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %q (%s): %w", s.Name, s.Code, err)
		}
		if h.Len() == 0 {
			return nil, fmt.Errorf("failed to fetch %q (%s): no observation in %s", s.Name, s.Code, r)
		}
		log.Printf("%s: %d observations for %d months", s.Code, h.Len(), r.Months())
		t.AddSeries(s.Name, h)
	}
	return t, nil
}

// Run resolves the range from start, loads the series and transforms the table.
func Run(f Fetcher, start date.Date, series ...Series) (*Table, error) {
	r := Resolve(start)
	t, err := Load(f, r, series...)
	if err != nil {
		return nil, err
	}
	if err := Transform(t); err != nil {
		return nil, err
	}
	return t, nil
}
