package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything; tests want the logging code paths
// exercised, not the output.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
