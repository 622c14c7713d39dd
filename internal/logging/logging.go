// Package logging provides structured logging using Go's slog package.
// The export engine itself never reaches for a global logger; binaries
// build one here and inject it into the coordinator.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Level represents a log level.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Format represents a log output format.
type Format int

// Output formats.
const (
	FormatJSON Format = iota
	FormatText
)

// New builds a logger with the specified level and format writing to w.
func New(w io.Writer, level Level, format Format) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// NewCLI builds the standard CLI logger on stderr, text format, with
// debug verbosity when requested.
func NewCLI(verbose bool) *slog.Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return New(os.Stderr, level, FormatText)
}

// Discard returns a logger that drops everything, for tests and for
// callers that opt out of logging.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
