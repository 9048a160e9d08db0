package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/renderer"
	"github.com/google/subcommands"
)

// tableCmd holds the flags for the 'table' subcommand.
type tableCmd struct {
	format string
	start  string
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "print the computed table" }
func (*tableCmd) Usage() string {
	return `realrates table [-format csv|markdown] [-start <date>]

  Prints the table the chart is drawn from, one row per month.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "markdown", "Output format: csv or markdown.")
	f.StringVar(&c.start, "start", "", "First date to fetch, overrides the configuration.")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "markdown" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want csv or markdown\n", c.format)
		return subcommands.ExitUsageError
	}
	_, t, status := load(c.start)
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.format == "markdown" {
		printMarkdown(renderer.RenderTable(t))
		return subcommands.ExitSuccess
	}
	if err := writeCSV(os.Stdout, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// writeCSV writes the table with full precision, a missing value is empty.
func writeCSV(w io.Writer, t *realrates.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"date"}, t.Names()...)); err != nil {
		return err
	}
	for on, row := range t.Rows() {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, on.String())
		for _, v := range row {
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
