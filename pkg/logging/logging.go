// Package logging configures structured logging with log/slog.
//
// Development builds get colored output from tint; production builds emit
// one JSON object per line.
//
// Usage:
//
//	logging.Setup()                                  // INFO text, from LOG_LEVEL env
//	logging.SetupWithOptions(logging.Options{JSON: true, Level: slog.LevelDebug})
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler.
type Options struct {
	Level slog.Level
	// JSON switches from colored text to JSON lines.
	JSON bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWithOptions(Options{Level: level})
}

// SetupWithOptions installs a logger built from opts as the slog default.
func SetupWithOptions(opts Options) {
	slog.SetDefault(New(opts))
}

// New builds a logger without installing it.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, warn and error to their slog levels. Anything else
// is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
