package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/realrates/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete("realrates")

	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if flag.NArg() == 0 {
		// plot is the default command.
		flag.CommandLine.Parse([]string{"plot"})
	}
	os.Exit(int(commander.Execute(context.Background())))
}
