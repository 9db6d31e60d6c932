package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fifo/renderer"
	"github.com/google/subcommands"
)

type mapCmd struct {
	app *App
	in  inputFlags
}

func (*mapCmd) Name() string     { return "map" }
func (*mapCmd) Synopsis() string { return "show how the columns of an export are mapped" }
func (*mapCmd) Usage() string {
	return `lots map [-col role=header]... [-profile <file>] <file>

  Detects the date, direction, nominal, TRN, CNC and PCK columns of a trade
  export and previews its first rows. Use it to check a mapping before 'lots calc'.
`
}

func (c *mapCmd) SetFlags(f *flag.FlagSet) { c.in.SetFlags(f, c.app.cfg) }

func (c *mapCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(errUsage)
	}
	loaded, err := c.in.load(f.Arg(0), c.app.cfg)
	if err != nil {
		return fail(err)
	}
	c.app.printMarkdown(renderer.MappingMarkdown(loaded.table, loaded.mapping))
	return subcommands.ExitSuccess
}
