// Package cmd implements the lots command-line application.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// App holds the state shared by every command: the configuration and the global flags.
type App struct {
	cfg      Config
	logLevel string
	plain    bool
}

// Register the subcommands, and the global flags on flag.CommandLine.
// A main package will call Register() to allow subcommands, Init() once flags are
// parsed, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg Config) *App {
	a := &App{cfg: cfg}
	flag.StringVar(&a.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error. Logs go to stderr.")
	flag.BoolVar(&a.plain, "plain", false, "Print raw markdown instead of rendering it for the terminal.")

	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&mapCmd{app: a}, "lots")
	c.Register(&calcCmd{app: a}, "lots")
	c.Register(&summaryCmd{app: a}, "lots")
	c.Register(&exportCmd{app: a}, "lots")
	c.Register(&serveCmd{app: a}, "server")
	c.Register(&topicCmd{app: a}, "documentation")
	return a
}

// Init sets up logging from the parsed global flags.
func (a *App) Init() {
	InitLogger(a.logLevel)
}

// Commands lists the names of the registered commands, for shell completion.
var Commands = []string{"map", "calc", "summary", "export", "serve", "topic"}

// ensure commands implement the interface.
var (
	_ subcommands.Command = (*mapCmd)(nil)
	_ subcommands.Command = (*calcCmd)(nil)
	_ subcommands.Command = (*summaryCmd)(nil)
	_ subcommands.Command = (*exportCmd)(nil)
	_ subcommands.Command = (*serveCmd)(nil)
	_ subcommands.Command = (*topicCmd)(nil)
	_ flag.Value          = (*columnFlags)(nil)
)
