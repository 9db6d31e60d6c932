// Command lots matches the trades of an export into FIFO lots.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fifo/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	cfg := cmd.LoadConfig()
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	app := cmd.Register(commander, cfg)

	completion().Complete("lots")

	flag.Parse()
	app.Init()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion, see
// COMP_INSTALL=1 lots.
func completion() *complete.Command {
	files := predict.Files("*")
	status := predict.Set{"all", "open", "closed"}
	roles := predict.Set{"date=", "direction=", "nominal=", "trn=", "cnc=", "pck="}
	input := map[string]complete.Predictor{
		"buy":     predict.Something,
		"sell":    predict.Something,
		"profile": predict.Files("*.yaml"),
		"sheet":   predict.Something,
		"records": predict.Something,
		"col":     roles,
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(input)+len(extra))
		for k, v := range input {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	sub := map[string]*complete.Command{
		"map":     {Flags: with(nil), Args: files},
		"summary": {Flags: with(nil), Args: files},
		"calc": {
			Flags: with(map[string]complete.Predictor{"status": status, "details": predict.Nothing}),
			Args:  files,
		},
		"export": {
			Flags: with(map[string]complete.Predictor{
				"status": status,
				"format": predict.Set{"csv", "json"},
				"o":      files,
			}),
			Args: files,
		},
		"serve": {Flags: map[string]complete.Predictor{
			"addr":       predict.Something,
			"profile":    predict.Files("*.yaml"),
			"max-upload": predict.Something,
		}},
		"topic": {Args: predict.Set{"calc", "mapping", "ordering", "export", "profile", "serve", "*"}},
	}
	for _, name := range []string{"help", "flags", "commands"} {
		sub[name] = &complete.Command{Args: predict.Set(cmd.Commands)}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"plain":     predict.Nothing,
		},
	}
}
