package renderer

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Line is a table column drawn on the chart.
type Line struct {
	Column string // column of the table
	Label  string // legend entry
	Color  color.Color
}

// ChartSpec describes a line chart of a table.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line

	LineWidth vg.Length
	ZeroLine  bool // dashed horizontal line at y=0
	Legend    bool
	Grid      bool

	Width, Height float64 // in inches
}

var (
	blue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	orange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	gray   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// DefaultChart returns the real rates chart for data starting at start.
func DefaultChart(start date.Date) ChartSpec {
	return ChartSpec{
		Title:  fmt.Sprintf("US Real Interest Rates (%d–Present)\n(Fed Funds & 10-Year Treasury, CPI-Adjusted)", start.Year()),
		XLabel: "Year",
		YLabel: "Real Interest Rate (%)",
		Lines: []Line{
			{Column: realrates.RealFedFundsColumn, Label: "Real Fed Funds Rate", Color: blue},
			{Column: realrates.RealTreasuryColumn, Label: "Real 10-Year Treasury Rate", Color: orange},
		},
		LineWidth: vg.Points(1.5),
		ZeroLine:  true,
		Legend:    true,
		Grid:      true,
		Width:     12,
		Height:    6,
	}
}

// Chart plots the lines of spec from t, against time.
func Chart(t *realrates.Table, spec ChartSpec) (*plot.Plot, error) {
	if t.Len() == 0 {
		return nil, errors.New("nothing to plot: the table is empty")
	}
	if len(spec.Lines) == 0 {
		return nil, errors.New("nothing to plot: no line")
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006"}
	p.Legend.Top = true
	p.Legend.Left = true

	if spec.Grid {
		p.Add(plotter.NewGrid())
	}

	days := t.Dates()
	for _, l := range spec.Lines {
		values, ok := t.Column(l.Column)
		if !ok {
			return nil, fmt.Errorf("cannot plot %q: no such column", l.Column)
		}
		parts := segments(days, values)
		if len(parts) == 0 {
			return nil, fmt.Errorf("cannot plot %q: no finite value", l.Column)
		}
		for i, part := range parts {
			line, err := plotter.NewLine(part)
			if err != nil {
				return nil, fmt.Errorf("cannot plot %q: %w", l.Column, err)
			}
			line.Width = spec.LineWidth
			if l.Color != nil {
				line.Color = l.Color
			}
			p.Add(line)
			if spec.Legend && i == 0 {
				p.Legend.Add(l.Label, line)
			}
		}
	}

	if spec.ZeroLine {
		zero := plotter.NewFunction(func(float64) float64 { return 0 })
		zero.Color = gray
		zero.Width = vg.Points(1)
		zero.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(zero)
		// Keep the reference line in view.
		p.Y.Min, p.Y.Max = math.Min(p.Y.Min, 0), math.Max(p.Y.Max, 0)
	}
	return p, nil
}

// segments splits a column into runs of finite values. Missing and infinite
// values are not drawn, the line is broken around them.
func segments(days []date.Date, values []float64) []plotter.XYs {
	var parts []plotter.XYs
	var cur plotter.XYs
	for i, day := range days {
		v := values[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(cur) > 0 {
				parts = append(parts, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(day.Time().Unix()), Y: v})
	}
	if len(cur) > 0 {
		parts = append(parts, cur)
	}
	return parts
}

// Save writes the chart to path, the extension selects the image format.
func Save(p *plot.Plot, spec ChartSpec, path string) error {
	if err := p.Save(vg.Length(spec.Width)*vg.Inch, vg.Length(spec.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("cannot save chart to %q: %w", path, err)
	}
	return nil
}

// Write writes the chart to w in format (png, svg, pdf...).
func Write(p *plot.Plot, spec ChartSpec, w io.Writer, format string) error {
	wt, err := p.WriterTo(vg.Length(spec.Width)*vg.Inch, vg.Length(spec.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("cannot render chart as %q: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}
