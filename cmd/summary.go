package cmd

import (
	"context"
	"flag"

	"github.com/etnz/realrates/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	start string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of the real interest rates" }
func (*summaryCmd) Usage() string {
	return `realrates summary [-start <date>]

  Displays, for each series, the latest value, the extremes and the mean,
  and how often the real rates were negative.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First date to fetch, overrides the configuration.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, t, status := load(c.start)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(t)))
	return subcommands.ExitSuccess
}
