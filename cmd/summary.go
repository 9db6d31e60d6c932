package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fifo/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	app *App
	in  inputFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the open and closed totals of an export" }
func (*summaryCmd) Usage() string {
	return `lots summary <file>

  Displays lot counts, open long and short positions, and the total bought and sold.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.in.SetFlags(f, c.app.cfg) }

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := c.in.loadAndCompute(f.Args(), c.app.cfg)
	if err != nil {
		return fail(err)
	}
	c.app.printMarkdown(renderer.SummaryMarkdown(res.Summary))
	return subcommands.ExitSuccess
}
