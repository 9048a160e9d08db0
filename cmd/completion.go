package cmd

import (
	"flag"

	"github.com/etnz/realrates/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flag values that can be predicted, other flags take any value.
var predictors = map[string]complete.Predictor{
	"config": predict.Files("*.yaml"),
	"o":      predict.Files("*"),
	"format": predict.Set{"csv", "markdown"},
}

// Completion describes the commands and their flags for shell completion.
//
// Built-in subcommands (help, flags, commands) are not included.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	root.Sub["topic"].Args = predict.Set(append(docs.Topics(), docs.Readme))
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[fl.Name] = predict.Nothing
			return
		}
		if p, ok := predictors[fl.Name]; ok {
			m[fl.Name] = p
			return
		}
		m[fl.Name] = predict.Something
	})
	return m
}
