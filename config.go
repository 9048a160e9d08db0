package realrates

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/realrates/date"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file read when none is given.
const DefaultConfigFile = "realrates.yaml"

// Config holds the settings of a run. Every field has a default.
type Config struct {
	Start    date.Date `yaml:"start"`        // first requested date
	FedFunds string    `yaml:"fed_funds"`    // code of the federal funds rate series
	Treasury string    `yaml:"treasury_10y"` // code of the 10-year yield series
	CPI      string    `yaml:"cpi"`          // code of the consumer price index series
	Output   string    `yaml:"output"`       // chart file, the extension selects the format
	Width    float64   `yaml:"width"`        // chart width in inches
	Height   float64   `yaml:"height"`       // chart height in inches
	Cache    string    `yaml:"cache"`        // expiry period of the HTTP cache
}

// DefaultConfig returns the settings of the original analysis.
func DefaultConfig() Config {
	s := DefaultSeries()
	return Config{
		Start:    DefaultStart,
		FedFunds: s[0].Code,
		Treasury: s[1].Code,
		CPI:      s[2].Code,
		Output:   "real_rates.png",
		Width:    12,
		Height:   6,
		Cache:    "daily",
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
//
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return cfg, nil
}

// supported chart formats, see gonum.org/v1/plot/vg/draw.NewFormattedCanvas.
var chartFormats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs error
	if c.Start.IsZero() {
		errs = errors.Join(errs, errors.New("start date is missing"))
	} else if c.Start.After(date.Today()) {
		errs = errors.Join(errs, fmt.Errorf("start date %s is in the future", c.Start))
	}
	for _, s := range c.Series() {
		if strings.TrimSpace(s.Code) == "" {
			errs = errors.Join(errs, fmt.Errorf("series code for %q is missing", s.Name))
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = errors.Join(errs, fmt.Errorf("invalid chart size %gx%g", c.Width, c.Height))
	}
	if ext := ChartFormat(c.Output); !slices.Contains(chartFormats, ext) {
		errs = errors.Join(errs, fmt.Errorf("unsupported chart format %q for %q", ext, c.Output))
	}
	if _, err := date.ParsePeriod(c.Cache); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid cache period: %w", err))
	}
	return errs
}

// CachePeriod returns the expiry period of the HTTP cache, daily if invalid.
func (c Config) CachePeriod() date.Period {
	p, _ := date.ParsePeriod(c.Cache)
	return p
}

// Series returns the series to fetch, in fetch order.
func (c Config) Series() []Series {
	s := DefaultSeries()
	s[0].Code, s[1].Code, s[2].Code = c.FedFunds, c.Treasury, c.CPI
	return s
}

// ChartFormat returns the image format implied by the file extension.
func ChartFormat(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
