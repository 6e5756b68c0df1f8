package logger

import (
	"log/slog"
	"strings"
)

// New builds the process logger. Level is the textual LOGLEVEL config value.
func New(level string) *slog.Logger {
	return slog.New(NewCloudHandler(parseLevel(level)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
