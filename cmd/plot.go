package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/etnz/realrates/renderer"
	"github.com/google/subcommands"
)

// plotCmd holds the flags for the 'plot' subcommand.
type plotCmd struct {
	output string
	noOpen bool
	start  string
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "chart the real interest rates" }
func (*plotCmd) Usage() string {
	return `realrates plot [-o <file>] [-no-open] [-start <date>]

  Fetches the series, computes the real rates and saves the chart.
  The chart is then opened with the default viewer.
`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Chart file, the extension selects the format (png, svg, pdf...). Defaults to the configuration output.")
	f.BoolVar(&c.noOpen, "no-open", false, "Do not open the chart once saved.")
	f.StringVar(&c.start, "start", "", "First date to fetch, overrides the configuration.")
}

func (c *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.start)
	if err == nil && c.output != "" {
		cfg.Output = c.output
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	spec := renderer.DefaultChart(cfg.Start)
	spec.Width, spec.Height = cfg.Width, cfg.Height
	p, err := renderer.Chart(t, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := renderer.Save(p, spec, cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Chart of %d months saved to %s\n", t.Len(), cfg.Output)

	if c.noOpen {
		return subcommands.ExitSuccess
	}
	if err := display(cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", cfg.Output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// display opens a file with the platform viewer.
var display = func(path string) error {
	var viewer *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		viewer = exec.Command("open", path)
	case "windows":
		viewer = exec.Command("cmd", "/c", "start", "", path)
	default:
		viewer = exec.Command("xdg-open", path)
	}
	viewer.Stderr = os.Stderr
	return viewer.Run()
}
