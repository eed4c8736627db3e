package diag

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console prints diagnostics one per line, with the level coloured when
// the output is a terminal.
type Console struct {
	w      io.Writer
	colors map[slog.Level]func(a ...any) string
}

func NewConsole(w io.Writer) *Console {
	c := &Console{w: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c.colors = map[slog.Level]func(a ...any) string{
			slog.LevelInfo:  color.New(color.FgCyan).SprintFunc(),
			slog.LevelWarn:  color.New(color.FgYellow).SprintFunc(),
			slog.LevelError: color.New(color.FgRed, color.Bold).SprintFunc(),
		}
	}
	return c
}

func (c *Console) Report(d Diagnostic) {
	level := d.Level.String()
	if f := c.colors[d.Level]; f != nil {
		level = f(level)
	}
	if d.Source == "" {
		fmt.Fprintf(c.w, "%s: %s\n", level, d.Message)
		return
	}
	fmt.Fprintf(c.w, "%s: '%s': %s\n", level, d.Source, d.Message)
}
