package insee

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
)

const monthlyCSV = `"Libellé";"Indice des prix à la consommation - Base 2015 - Ensemble des ménages - France - Ensemble";"Codes"
"idBank";"001763852";""
"Dernière mise à jour";"30/09/2025 08:45";""
"Période";"";""
"2025-10";"";""
"2025-09";"120.31";"P"
"2025-08";"120.76";"A"
"2024-09";"119.09";"A"
`

func TestParseSeries(t *testing.T) {
	series, err := parseSeries(strings.NewReader(monthlyCSV))
	if err != nil {
		t.Fatalf("parseSeries() failed: %v", err)
	}

	if series.IDBank != "001763852" {
		t.Errorf("got IDBank %q, want %q", series.IDBank, "001763852")
	}
	if want := time.Date(2025, 9, 30, 8, 45, 0, 0, time.UTC); !series.LastUpdate.Equal(want) {
		t.Errorf("got LastUpdate %v, want %v", series.LastUpdate, want)
	}
	// The announced but empty period is skipped.
	if series.Values.Len() != 3 {
		t.Errorf("got %d values, want 3", series.Values.Len())
	}
	if val, ok := series.Values.Get(date.New(2025, time.September, 1)); !ok || val != 120.31 {
		t.Errorf("for 2025-09-01, got %f, want 120.31", val)
	}
	if day, _ := series.Values.Latest(); day != date.New(2025, time.September, 1) {
		t.Errorf("Latest() = %v, want 2025-09-01", day)
	}
}

func TestParseInseeDate(t *testing.T) {
	testCases := []struct {
		in   string
		want date.Date
	}{
		{"2025-08", date.New(2025, time.August, 1)},
		{"2025-T1", date.New(2025, time.January, 1)},
		{"2025-T2", date.New(2025, time.April, 1)},
		{"2024-T4", date.New(2024, time.October, 1)},
	}
	for _, tc := range testCases {
		got, err := parseInseeDate(tc.in)
		if err != nil {
			t.Errorf("parseInseeDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseInseeDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSeries_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		wantErr string
	}{
		{
			name: "bad last update date",
			csvData: `"Libellé";"..."
"idBank";"..."
"Dernière mise à jour";"not-a-date"
"Période";""
`,
			wantErr: "failed to parse last update date",
		},
		{
			name: "bad quarterly date",
			csvData: `"Libellé";"..."
"idBank";"..."
"Dernière mise à jour";"28/08/2025 08:45"
"Période";""
"2025-T5";"135.2"`,
			wantErr: "invalid quarter in quarterly date",
		},
		{
			name: "bad month",
			csvData: `"Libellé";"..."
"idBank";"..."
"Dernière mise à jour";"28/08/2025 08:45"
"Période";""
"2025-13";"135.2"`,
			wantErr: "invalid month in monthly date",
		},
		{
			name: "bad value",
			csvData: `"Libellé";"..."
"idBank";"..."
"Dernière mise à jour";"28/08/2025 08:45"
"Période";""
"2025-T2";"not-a-float"`,
			wantErr: "failed to parse value",
		},
		{
			name: "not enough records",
			csvData: `"Libellé";"..."
"idBank";"..."`,
			wantErr: "not enough records in csv",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSeries(strings.NewReader(tc.csvData))
			if err == nil {
				t.Fatalf("parseSeries() expected an error, but got none")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("parseSeries() error = %q, want to contain %q", err, tc.wantErr)
			}
		})
	}
}

// zipped returns a zip archive with a single file.
func zipped(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFetch(t *testing.T) {
	archive := zipped(t, "valeurs_mensuelles.csv", monthlyCSV)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/series/001763852/csv" {
			http.NotFound(w, r)
			return
		}
		w.Write(archive)
	}))
	defer srv.Close()

	p := &Provider{Client: srv.Client(), URL: srv.URL + "/series/%s/csv?anneeDebut=%d&anneeFin=%d"}
	r := date.Range{From: date.New(2025, time.January, 1), To: date.New(2025, time.December, 31)}

	h, err := p.Fetch("INSEE-001763852", r)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	// 2024-09 is out of range.
	if h.Len() != 2 {
		t.Errorf("got %d values, want 2", h.Len())
	}

	if _, err := p.Fetch("INSEE-000000000", r); err == nil {
		t.Errorf("Fetch() of an unknown series expected an error")
	}
	if _, err := p.Fetch("CPIAUCSL", r); err == nil {
		t.Errorf("Fetch() of a non INSEE code expected an error")
	}
}

func TestFetch_NoValuesFile(t *testing.T) {
	archive := zipped(t, "caract.csv", "nothing")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.Write(archive) }))
	defer srv.Close()

	p := &Provider{Client: srv.Client(), URL: srv.URL + "/series/%s/csv?anneeDebut=%d&anneeFin=%d"}
	_, err := p.Fetch("INSEE-001763852", realrates.Resolve(realrates.DefaultStart))
	if err == nil || !strings.Contains(err.Error(), "caract.csv") {
		t.Errorf("Fetch() error = %v, want the list of found files", err)
	}
}

func TestFetch_Live(t *testing.T) {
	// This is an integration test that hits the live INSEE server.
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}
	realrates.CacheDir = t.TempDir()

	h, err := New(date.Daily).Fetch("INSEE-001763852", date.Range{From: date.New(2023, time.January, 1), To: date.New(2023, time.December, 31)})
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if h.Len() == 0 {
		t.Error("expected to get some values, but got none")
	}
}
