package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Totox00/multiarchi-tools/diag"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		d    diag.Diagnostic
		want string
	}{
		{"info", diag.Diagnostic{Level: slog.LevelInfo, Message: "done"}, "msg=done\n"},
		{"warn", diag.Diagnostic{Level: slog.LevelWarn, Source: "p.yaml", Message: "oops"}, "level=WARN msg=oops source=p.yaml\n"},
		{"error", diag.Diagnostic{Level: slog.LevelError, Message: "bad"}, "level=ERROR msg=bad\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			diag.NewLogSink(newLogger(buf)).Report(tt.d)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestSinkWritesToGivenWriter(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	cfg := &MainConfig{Log: true}
	cfg.sink(buf).Report(diag.Diagnostic{Level: slog.LevelWarn, Message: "x"})
	if got, want := buf.String(), "level=WARN msg=x\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
