// Package logging configures structured logging for the ledger binaries.
//
// Usage:
//
//	logging.Setup()                                      // from LOG_LEVEL / LOG_FORMAT
//	logging.SetupWithLevel(os.Stderr, slog.LevelDebug)   // explicit level override
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
//	LOG_FORMAT: text (colored, default) or json
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures logging on stderr at the level specified by LOG_LEVEL.
func Setup() {
	SetupWithLevel(os.Stderr, levelFromEnv())
}

// SetupWithLevel configures logging to w at the given level and returns the
// logger it installed as default.
func SetupWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(NewHandler(w, level, os.Getenv("LOG_FORMAT")))
	slog.SetDefault(logger)
	return logger
}

// NewHandler builds the handler for a format: "json" for machine-readable
// output, anything else for colored text.
func NewHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
	})
}

func levelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
