// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel converts a configured level name to a slog.Level.
// Unknown names map to info and ok is false.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup creates a JSON logger writing to w and installs it as the slog default.
func Setup(w io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)

	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)

	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}
	return l
}
