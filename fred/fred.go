// Package fred fetches series from FRED, the economic database of the
// Federal Reserve Bank of St. Louis.
//
// Without an API key the public graph CSV export is used. With a key, the
// observations are read from the JSON API.
package fred

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
)

// APIKeyEnv is the environment variable holding the FRED API key.
const APIKeyEnv = "FRED_API_KEY"

const (
	graphURL        = "https://fred.stlouisfed.org/graph/fredgraph.csv"
	observationsURL = "https://api.stlouisfed.org/fred/series/observations"
)

// Provider fetches monthly observations from FRED.
type Provider struct {
	APIKey string // optional, selects the JSON API

	Client          *http.Client
	GraphURL        string
	ObservationsURL string
}

// New returns a Provider whose responses are cached on disk until the end of
// the current cache period.
func New(apiKey string, cache date.Period) *Provider {
	return &Provider{
		APIKey:          apiKey,
		Client:          realrates.NewCachingClient(cache),
		GraphURL:        graphURL,
		ObservationsURL: observationsURL,
	}
}

// Fetch retrieves the series code over r. Missing observations are kept as NaN.
func (p *Provider) Fetch(code string, r date.Range) (*date.History[float64], error) {
	if p.APIKey != "" {
		return p.fetchJSON(code, r)
	}
	return p.fetchCSV(code, r)
}

// fetchCSV downloads the graph export, it requires no key.
func (p *Provider) fetchCSV(code string, r date.Range) (*date.History[float64], error) {
	q := url.Values{}
	q.Set("id", code)
	q.Set("cosd", r.From.String())
	q.Set("coed", r.To.String())
	addr := p.GraphURL + "?" + q.Encode()
	log.Println("Downloading from FRED:", addr)

	body, err := realrates.Get(p.Client, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to download FRED series %s: %w", code, err)
	}
	h, err := parseCSV(bytes.NewReader(body), code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FRED series %s: %w", code, err)
	}
	return h.Within(r), nil
}

// parseCSV reads the graph export:
//
//	observation_date,FEDFUNDS
//	1960-01-01,3.99
//	1960-02-01,.
func parseCSV(r io.Reader, code string) (*date.History[float64], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // checked below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, fmt.Errorf("missing csv header")
	}
	if got := records[0][1]; !strings.EqualFold(got, code) {
		return nil, fmt.Errorf("unexpected series %q in csv header", got)
	}

	h := new(date.History[float64])
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			return nil, fmt.Errorf("invalid csv record %q", strings.Join(rec, ","))
		}
		on, err := date.Parse(rec[0])
		if err != nil {
			return nil, err
		}
		v, err := realrates.ParseObservation(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", on, err)
		}
		h.Append(on, v)
	}
	return h, nil
}

// fetchJSON reads the observations from the JSON API.
func (p *Provider) fetchJSON(code string, r date.Range) (*date.History[float64], error) {
	q := url.Values{}
	q.Set("series_id", code)
	q.Set("api_key", p.APIKey)
	q.Set("file_type", "json")
	q.Set("observation_start", r.From.String())
	q.Set("observation_end", r.To.String())
	log.Println("Downloading from FRED API:", code)

	var jobj any
	if err := realrates.JSONGet(p.Client, p.ObservationsURL+"?"+q.Encode(), &jobj); err != nil {
		return nil, fmt.Errorf("failed to download FRED series %s: %w", code, err)
	}
	h, err := parseObservations(jobj)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FRED series %s: %w", code, err)
	}
	return h.Within(r), nil
}

// parseObservations extracts the observations of a JSON API response:
//
//	{"observations": [{"date": "1960-01-01", "value": "3.99", ...}, ...]}
func parseObservations(jobj any) (*date.History[float64], error) {
	// Wildcards on a missing key select nothing, an error body would read as
	// an empty series.
	obs, err := jsonpath.Get("$.observations", jobj)
	if err != nil {
		return nil, fmt.Errorf("no observations in response: %w", err)
	}
	if _, ok := obs.([]any); !ok {
		return nil, fmt.Errorf("no observations in response: %v", obs)
	}
	days, err := selectStrings(jobj, "$.observations[*].date")
	if err != nil {
		return nil, err
	}
	values, err := selectStrings(jobj, "$.observations[*].value")
	if err != nil {
		return nil, err
	}
	if len(days) != len(values) {
		return nil, fmt.Errorf("got %d dates for %d values", len(days), len(values))
	}

	h := new(date.History[float64])
	for i, s := range days {
		on, err := date.Parse(s)
		if err != nil {
			return nil, err
		}
		v, err := realrates.ParseObservation(values[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", on, err)
		}
		h.Append(on, v)
	}
	return h, nil
}

// selectStrings evaluates a jsonpath that must select a list of strings.
func selectStrings(jobj any, path string) ([]string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error evaluating %q: not a list %v", path, jval)
	}
	res := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("error evaluating %q: not a string %v", path, v)
		}
		res = append(res, s)
	}
	return res, nil
}
