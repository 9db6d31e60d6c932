package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown writes md to stdout, rendered for the terminal unless plain output
// was requested.
func (a *App) printMarkdown(md string) {
	writeMarkdown(os.Stdout, md, a.plain)
}

func writeMarkdown(w io.Writer, md string, plain bool) {
	if plain {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		slog.Warn("markdown rendering unavailable", "error", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Warn("markdown rendering failed", "error", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
