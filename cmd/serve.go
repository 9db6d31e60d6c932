package cmd

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/api"
	"github.com/etnz/fifo/sheet"
	"github.com/google/subcommands"
)

type serveCmd struct {
	app      *App
	addr     string
	profile  string
	maxBytes int64
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the lot computation over HTTP" }
func (*serveCmd) Usage() string {
	return `lots serve [-addr <host:port>] [-profile <file>]

  Starts an HTTP server accepting trade exports on POST /api/lots, /api/summary
  and /api/mapping. See 'lots topic serve'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", c.app.cfg.Addr, "Address to listen on.")
	f.StringVar(&c.profile, "profile", c.app.cfg.Profile, "Path to a YAML mapping profile used by default.")
	f.Int64Var(&c.maxBytes, "max-upload", api.DefaultMaxUploadBytes, "Maximum upload size in bytes.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := api.Config{
		Keywords:       fifo.Keywords{Buy: c.app.cfg.BuyKeyword, Sell: c.app.cfg.SellKeyword},
		MaxUploadBytes: c.maxBytes,
	}
	if c.profile != "" {
		p, err := sheet.LoadProfile(c.profile)
		if err != nil {
			return fail(err)
		}
		cfg.Profile = p
	}
	if err := cfg.Keywords.Validate(); err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewServer(cfg).ListenAndServe(ctx, c.addr); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
