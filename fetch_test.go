package realrates

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/realrates/date"
)

// fakeProvider serves in-memory series and records the calls.
type fakeProvider struct {
	series map[string]*date.History[float64]
	calls  []string
}

func (f *fakeProvider) Fetch(code string, r date.Range) (*date.History[float64], error) {
	f.calls = append(f.calls, code)
	h, ok := f.series[code]
	if !ok {
		return nil, errors.New("series does not exist")
	}
	return h, nil
}

func TestLoad(t *testing.T) {
	p := &fakeProvider{series: map[string]*date.History[float64]{
		"FEDFUNDS": monthly(jan1960, 1, 2, 3),
		"GS10":     monthly(jan1960, 4, 5, 6),
		"CPIAUCSL": monthly(jan1960.AddMonths(1), 100, 101, 102),
	}}

	tb, err := Load(p, Resolve(DefaultStart), DefaultSeries()...)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := strings.Join(p.calls, ","); got != "FEDFUNDS,GS10,CPIAUCSL" {
		t.Errorf("fetch order = %s, want FEDFUNDS,GS10,CPIAUCSL", got)
	}
	if tb.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tb.Len())
	}
	if got := tb.Value(3, CPIColumn); got != 102 {
		t.Errorf("Value(3, CPI) = %v, want 102", got)
	}
}

func TestLoad_FailureAborts(t *testing.T) {
	p := &fakeProvider{series: map[string]*date.History[float64]{
		"FEDFUNDS": monthly(jan1960, 1),
		"CPIAUCSL": monthly(jan1960, 100),
	}}

	_, err := Load(p, Resolve(DefaultStart), DefaultSeries()...)
	if err == nil {
		t.Fatal("Load() expected an error")
	}
	if !strings.Contains(err.Error(), "GS10") {
		t.Errorf("Load() error = %q, want to contain the failing code", err)
	}
	if len(p.calls) != 2 {
		t.Errorf("Load() made %d calls, want 2 (no call after a failure)", len(p.calls))
	}
}

func TestLoad_EmptySeries(t *testing.T) {
	p := &fakeProvider{series: map[string]*date.History[float64]{
		"FEDFUNDS": monthly(jan1960, 1),
		"GS10":     new(date.History[float64]),
		"CPIAUCSL": monthly(jan1960, 100),
	}}

	tb, err := Load(p, Resolve(DefaultStart), DefaultSeries()...)
	if err == nil {
		t.Fatalf("Load() = %d rows, want an error", tb.Len())
	}
	if !strings.Contains(err.Error(), "GS10") || !strings.Contains(err.Error(), "no observation") {
		t.Errorf("Load() error = %q, want the empty code", err)
	}
	if len(p.calls) != 2 {
		t.Errorf("Load() made %d calls, want 2", len(p.calls))
	}
}

func TestRouter(t *testing.T) {
	fred := &fakeProvider{series: map[string]*date.History[float64]{"GS10": monthly(jan1960, 4)}}
	insee := &fakeProvider{series: map[string]*date.History[float64]{"INSEE-001763852": monthly(jan1960, 99)}}
	r := &Router{Default: fred, Prefixed: map[string]Fetcher{"INSEE-": insee}}

	if _, err := r.Fetch("INSEE-001763852", Resolve(DefaultStart)); err != nil {
		t.Errorf("Fetch(INSEE) failed: %v", err)
	}
	if _, err := r.Fetch("GS10", Resolve(DefaultStart)); err != nil {
		t.Errorf("Fetch(GS10) failed: %v", err)
	}
	if len(insee.calls) != 1 || len(fred.calls) != 1 {
		t.Errorf("calls insee=%v fred=%v, want one each", insee.calls, fred.calls)
	}

	empty := &Router{}
	if _, err := empty.Fetch("GS10", Resolve(DefaultStart)); err == nil {
		t.Errorf("Fetch() without provider expected an error")
	}
}

func TestRun(t *testing.T) {
	const n = 25
	p := &fakeProvider{series: map[string]*date.History[float64]{
		"FEDFUNDS": monthly(jan1960, linear(n, 1, 0.1)...),
		"GS10":     monthly(jan1960, linear(n, 4, 0.1)...),
		"CPIAUCSL": monthly(jan1960, linear(n, 100, 0.5)...),
	}}
	tb, err := Run(p, jan1960, DefaultSeries()...)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if tb.Len() != n-InflationLag {
		t.Errorf("Len() = %d, want %d", tb.Len(), n-InflationLag)
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(date.EnvTestingNow, "2025-10-18")
	got := Resolve(DefaultStart)
	want := date.Range{From: date.New(1960, time.January, 1), To: date.New(2025, time.October, 18)}
	if got != want {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}
