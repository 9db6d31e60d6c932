package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/fifo"
	"github.com/google/subcommands"
)

type exportCmd struct {
	app    *App
	in     inputFlags
	format string
	output string
	status string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export lots with their contributors" }
func (*exportCmd) Usage() string {
	return `lots export [-format csv|json] [-o <file>] [-status all|open|closed] <file>

  Writes one CSV row per lot contribution, or one JSON lot per line, to stdout
  or to the -o file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, c.app.cfg)
	f.StringVar(&c.format, "format", "csv", "Output format: csv (contributor rows) or json (one lot per line).")
	f.StringVar(&c.output, "o", "", "Output file, stdout by default.")
	f.StringVar(&c.status, "status", "all", "Lots to export: all, open or closed.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := fifo.ParseStatusFilter(c.status)
	if err != nil {
		return fail(err)
	}
	var encode func(io.Writer, []fifo.Lot) error
	switch c.format {
	case "csv":
		encode = fifo.EncodeContributorsCSV
	case "json", "jsonl":
		encode = fifo.EncodeLots
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	res, err := c.in.loadAndCompute(f.Args(), c.app.cfg)
	if err != nil {
		return fail(err)
	}
	lots := fifo.FilterLots(res.Lots, filter)

	if c.output == "" {
		if err := encode(os.Stdout, lots); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(c.output)
	if err != nil {
		return fail(err)
	}
	if err := encode(file, lots); err != nil {
		file.Close()
		return fail(fmt.Errorf("failed to write %q: %w", c.output, err))
	}
	if err := file.Close(); err != nil {
		return fail(err)
	}
	slog.Info("lots exported", "file", c.output, "lots", len(lots), "format", c.format)
	return subcommands.ExitSuccess
}
