// Package logging sets up the process-wide structured logger.
// Diagnostics go to stderr so they never interleave with the quiz
// console on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a text slog handler at the given level as the default
// logger and returns it. Unknown level names fall back to info.
func Setup(level string) *slog.Logger {
	return SetupWithWriter(os.Stderr, level)
}

// SetupWithWriter is Setup with an explicit sink, used by tests.
func SetupWithWriter(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
