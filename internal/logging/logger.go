// Package logging provides structured logging configuration using log/slog.
//
// Log output goes to stderr by default so it never interleaves with the
// interactive session on stdout; a file destination can be configured for
// sessions that should leave a trace behind.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level, format, and
// destination.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
// file names a log file to append to; empty means stderr.
func Setup(level, format, file string) error {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Component returns a logger tagged with the originating component. It
// captures the current default logger, so call it after Setup.
//
// Usage:
//
//	log := logging.Component("store")
//	log.Debug("roster saved", "records", n)
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}
