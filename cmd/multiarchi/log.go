package main

import (
	"io"
	"log/slog"

	"github.com/Totox00/multiarchi-tools/debug"
)

// newLogger returns the logger behind --log. Lines carry no timestamp and
// info lines carry no level.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug.Rules() || debug.Draw() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: plainAttrs,
	}))
}

func plainAttrs(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.LevelKey:
		if lv, ok := a.Value.Any().(slog.Level); ok && lv == slog.LevelInfo {
			return slog.Attr{}
		}
	}
	return a
}
