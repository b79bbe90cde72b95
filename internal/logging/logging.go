// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New creates a text slog logger writing to stderr. Verbose enables debug
// level output.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
