// Package diag carries recoverable problems found while processing
// documents, so callers decide whether to log, print or assert on them.
package diag

import (
	"context"
	"fmt"
	"log/slog"
)

// Diagnostic is one reported problem. Source names the document or file
// it concerns.
type Diagnostic struct {
	Level   slog.Level
	Source  string
	Message string
}

func (d Diagnostic) String() string {
	if d.Source == "" {
		return d.Level.String() + ": " + d.Message
	}
	return fmt.Sprintf("%s: '%s': %s", d.Level, d.Source, d.Message)
}

type Sink interface {
	Report(Diagnostic)
}

type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

func Infof(s Sink, source, format string, args ...any) {
	report(s, slog.LevelInfo, source, format, args...)
}

func Warnf(s Sink, source, format string, args ...any) {
	report(s, slog.LevelWarn, source, format, args...)
}

func Errorf(s Sink, source, format string, args ...any) {
	report(s, slog.LevelError, source, format, args...)
}

func report(s Sink, level slog.Level, source, format string, args ...any) {
	if s == nil {
		return
	}
	s.Report(Diagnostic{Level: level, Source: source, Message: fmt.Sprintf(format, args...)})
}

// Collector keeps diagnostics in memory.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Messages returns the messages of the diagnostics at or above level.
func (c *Collector) Messages(level slog.Level) []string {
	var res []string
	for _, d := range c.Diagnostics {
		if d.Level >= level {
			res = append(res, d.Message)
		}
	}
	return res
}

// LogSink forwards diagnostics to a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

func NewLogSink(l *slog.Logger) *LogSink {
	return &LogSink{Logger: l}
}

func (l *LogSink) Report(d Diagnostic) {
	attrs := []any{}
	if d.Source != "" {
		attrs = append(attrs, "source", d.Source)
	}
	l.Logger.Log(context.Background(), d.Level, d.Message, attrs...)
}

// Tee reports to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			s.Report(d)
		}
	})
}
