package main

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// verbosityLevel maps a 1-5 verbosity to a slog level.
// Operation traces are debug records, so 4 and 5 both show everything.
func verbosityLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 1:
		return slog.LevelError
	case verbosity == 2:
		return slog.LevelWarn
	case verbosity == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// newLogger creates a logger that writes to w in the given format.
// Verbosity 0 discards every record.
func newLogger(w io.Writer, verbosity int, format string) (*slog.Logger, error) {
	if verbosity <= 0 {
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: verbosityLevel(verbosity)}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
}

// module returns a child logger with an additional "module" attribute.
func module(l *slog.Logger, name string) *slog.Logger {
	return l.With("module", name)
}
