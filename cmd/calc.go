package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/renderer"
	"github.com/google/subcommands"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	app     *App
	in      inputFlags
	status  string
	details bool
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "match the trades of an export into FIFO lots" }
func (*calcCmd) Usage() string {
	return `lots calc [-status all|open|closed] [-details] <file>

  Reads a trade export (CSV, XLSX or JSON), matches buys and sells in FIFO order
  and prints the resulting lots with a summary.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, c.app.cfg)
	f.StringVar(&c.status, "status", "all", "Lots to list: all, open or closed.")
	f.BoolVar(&c.details, "details", false, "List the contributors of every lot.")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := fifo.ParseStatusFilter(c.status)
	if err != nil {
		return fail(err)
	}
	res, err := c.in.loadAndCompute(f.Args(), c.app.cfg)
	if err != nil {
		return fail(err)
	}
	c.app.printMarkdown(renderer.ReportMarkdown(res, renderer.LotsOptions{Filter: filter, Details: c.details}))
	return subcommands.ExitSuccess
}
