// Package logger provides structured JSON logging for news-pipeline.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global logger instance
var Logger *slog.Logger

// GlobalContext is the global ContextLogger instance
var GlobalContext *ContextLogger

func init() {
	// Packages log through Logger before main runs Init (tests, CLI).
	Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	GlobalContext = NewContextLogger(Logger)
}

// Init initializes a JSON logger with trace context support
func Init() *slog.Logger {
	return InitWithWriter(os.Stdout, os.Getenv("LOG_LEVEL"))
}

// InitWithWriter initializes the global logger writing to w at the given level.
func InitWithWriter(w io.Writer, levelName string) *slog.Logger {
	level := parseLevel(levelName)

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	handler := NewTraceContextHandler(jsonHandler)

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	GlobalContext = NewContextLogger(Logger)

	Logger.Info("Logger initialized", "level", level.String())

	return Logger
}

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
