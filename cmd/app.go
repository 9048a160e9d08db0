// Package cmd implements the CLI application to chart real interest rates.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/realrates"
	"github.com/etnz/realrates/date"
	"github.com/etnz/realrates/fred"
	"github.com/etnz/realrates/insee"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands, a main package registers them.
var Commands = []subcommands.Command{
	&plotCmd{},
	&tableCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file. Defaults to "+realrates.DefaultConfigFile+" if it exists.")
var fredAPIKey = flag.String("fred-api-key", "", "FRED API key. This flag takes precedence over the "+fred.APIKeyEnv+" environment variable. Without a key, the public CSV export is used.")

// LoadEnv reads the .env file of the working directory, if any.
//
// Variables already set in the environment are kept.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// apiKey retrieves the FRED API key from the command-line flag or the environment variable.
func apiKey() string {
	if *fredAPIKey != "" {
		return *fredAPIKey
	}
	return os.Getenv(fred.APIKeyEnv)
}

// newFetcher returns the providers: INSEE by prefix, FRED otherwise.
var newFetcher = func(cfg realrates.Config) realrates.Fetcher {
	return &realrates.Router{
		Default:  fred.New(apiKey(), cfg.CachePeriod()),
		Prefixed: map[string]realrates.Fetcher{insee.Prefix: insee.New(cfg.CachePeriod())},
	}
}

// loadConfig reads the configuration file and overrides its start date with start, if set.
func loadConfig(start string) (realrates.Config, error) {
	path := *configFile
	if path == "" {
		path = realrates.DefaultConfigFile
	}
	cfg, err := realrates.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && *configFile == "" {
		cfg, err = realrates.DefaultConfig(), nil
	}
	if err != nil {
		return cfg, err
	}
	if start != "" {
		if cfg.Start, err = date.Parse(start); err != nil {
			return cfg, fmt.Errorf("invalid start date: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

// run loads and transforms the series of cfg.
func run(cfg realrates.Config) (*realrates.Table, error) {
	log.Printf("fetching %d series from %s", len(cfg.Series()), cfg.Start)
	return realrates.Run(newFetcher(cfg), cfg.Start, cfg.Series()...)
}

// load is the common part of the commands: configuration, fetch and transform.
// It prints errors and returns the exit status to use on failure.
func load(start string) (realrates.Config, *realrates.Table, subcommands.ExitStatus) {
	cfg, err := loadConfig(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, nil, subcommands.ExitUsageError
	}
	t, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, nil, subcommands.ExitFailure
	}
	return cfg, t, subcommands.ExitSuccess
}
