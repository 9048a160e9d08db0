package realrates

import (
	"math"
	"testing"
)

func TestParseObservation(t *testing.T) {
	testCases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"4.33", 4.33, false},
		{" 29.010 ", 29.01, false},
		{"-0.5", -0.5, false},
		{"1e2", 100, false},
		{".", math.NaN(), false},
		{"", math.NaN(), false},
		{"n/a", math.NaN(), true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseObservation(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseObservation(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if math.IsNaN(tc.want) {
				if !math.IsNaN(got) {
					t.Errorf("ParseObservation(%q) = %v, want NaN", tc.in, got)
				}
				return
			}
			if got != tc.want {
				t.Errorf("ParseObservation(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
