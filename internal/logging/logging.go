// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// Setup installs a text logger on w as the default. Debug enables
// debug-level records.
func Setup(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
