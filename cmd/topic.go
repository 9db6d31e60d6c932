package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fifo/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	app *App
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `lots topic [<topic>...]

  Shows the documentation of the given topics, or the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail(fmt.Errorf("reading doc: %w", err))
	}
	c.app.printMarkdown(doc)
	return subcommands.ExitSuccess
}
