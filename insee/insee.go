// Package insee fetches series from the INSEE macro-economic database (BDM).
//
// A series is designated by its idBank, prefixed with "INSEE-", e.g.
// "INSEE-001763852" for the French consumer price index.
package insee

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
)

// Prefix designates INSEE series codes.
const Prefix = "INSEE-"

const bdmURL = "https://bdm.insee.fr/series/%s/csv?lang=fr&ordre=antechronologique&transposition=donneescolonne&periodeDebut=1&anneeDebut=%d&periodeFin=12&anneeFin=%d&revision=sansrevisions"

// Provider fetches series from INSEE.
type Provider struct {
	Client *http.Client
	URL    string // format with idBank, first year and last year
}

// New returns a Provider whose responses are cached on disk until the end of
// the current cache period.
func New(cache date.Period) *Provider {
	return &Provider{Client: realrates.NewCachingClient(cache), URL: bdmURL}
}

// Fetch retrieves the series code ("INSEE-<idBank>") over r.
func (p *Provider) Fetch(code string, r date.Range) (*date.History[float64], error) {
	idBank, ok := strings.CutPrefix(code, Prefix)
	if !ok || idBank == "" {
		return nil, fmt.Errorf("invalid INSEE series code %q, want %s<idBank>", code, Prefix)
	}
	series, err := p.getSeries(idBank, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get series for INSEE ID %s: %w", idBank, err)
	}
	log.Printf("INSEE %s: %s (updated %s)", series.IDBank, series.Libelle, series.LastUpdate.Format(time.DateOnly))
	return series.Values, nil
}

// getSeries constructs the URL, downloads, and parses an INSEE time series.
func (p *Provider) getSeries(idBank string, r date.Range) (*Series, error) {
	url := fmt.Sprintf(p.URL, idBank, r.From.Year(), r.To.Year())
	log.Println("Downloading from INSEE:", url)

	body, err := realrates.Get(p.Client, url)
	if err != nil {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: %w", idBank, err)
	}

	zipReader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive from INSEE response: %w", err)
	}

	var foundFiles []string
	for _, f := range zipReader.File {
		filename := f.Name
		foundFiles = append(foundFiles, filename)
		if filename == "valeurs_trimestrielles.csv" || filename == "valeurs_mensuelles.csv" {
			csvFile, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open '%s' from zip archive: %w", filename, err)
			}
			defer csvFile.Close()
			series, err := parseSeries(csvFile)
			if err != nil {
				return nil, err
			}
			series.Values = series.Values.Within(r)
			return series, nil
		}
	}

	return nil, fmt.Errorf("could not find a values file (mensuelles or trimestrielles) in downloaded zip file for ID %s (found: %s)", idBank, strings.Join(foundFiles, ", "))
}

// Series holds the data from an INSEE time series CSV file.
type Series struct {
	Libelle    string
	IDBank     string
	LastUpdate time.Time
	Values     *date.History[float64]
}

// parseInseeDate parses a string like "2025-T2" or "2025-08" into the first
// day of that period, so that monthly series align with FRED's.
func parseInseeDate(s string) (date.Date, error) {
	// Try quarterly format: "YYYY-TQ"
	if strings.Contains(s, "-T") {
		return parseQuarterlyDate(s)
	}

	// Try monthly format: "YYYY-MM"
	parts := strings.Split(s, "-")
	if len(parts) == 2 {
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return date.Date{}, fmt.Errorf("invalid year in monthly date %q: %w", s, err)
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return date.Date{}, fmt.Errorf("invalid month in monthly date %q", s)
		}
		return date.New(year, time.Month(month), 1), nil
	}
	return date.Date{}, fmt.Errorf("unrecognized insee date format: %q", s)
}

// parseQuarterlyDate parses a string like "2025-T2" into the first day of that quarter.
func parseQuarterlyDate(s string) (date.Date, error) {
	parts := strings.Split(s, "-T")
	if len(parts) != 2 {
		return date.Date{}, fmt.Errorf("invalid quarterly date format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid year in quarterly date %q: %w", s, err)
	}

	quarter, err := strconv.Atoi(parts[1])
	if err != nil || quarter < 1 || quarter > 4 {
		return date.Date{}, fmt.Errorf("invalid quarter in quarterly date %q", s)
	}
	return date.New(year, time.Month(quarter*3-2), 1), nil
}

// parseSeries reads the INSEE CSV format from an io.Reader.
//
// Periods with no value (announced but not yet published) are skipped.
func parseSeries(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) < 4 {
		return nil, fmt.Errorf("not enough records in csv to parse series")
	}
	for i, rec := range records[:3] {
		if len(rec) < 2 {
			return nil, fmt.Errorf("invalid header line %d in csv", i+1)
		}
	}

	series := &Series{
		Libelle: records[0][1],
		IDBank:  records[1][1],
		Values:  new(date.History[float64]),
	}

	series.LastUpdate, err = time.Parse("02/01/2006 15:04", records[2][1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse last update date %q: %w", records[2][1], err)
	}

	for _, rec := range records[4:] {
		if len(rec) < 2 || rec[1] == "" {
			continue
		}
		on, err := parseInseeDate(rec[0])
		if err != nil {
			// Don't wrap, parseInseeDate provides good context
			return nil, err
		}
		val, err := realrates.ParseObservation(rec[1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", rec[1], rec[0], err)
		}
		series.Values.Append(on, val)
	}
	return series, nil
}
