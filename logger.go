package sysio

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sysio-specific helpers.
// This provides structured logging with consistent field names.
//
// All helpers are safe to call on a nil *Logger; they do nothing.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogMap logs a mapper construction.
func (l *Logger) LogMap(ctx context.Context, path string, size int, populate bool, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.ErrorContext(ctx, "map failed",
			"path", path,
			"populate", populate,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "map completed",
			"path", path,
			"size", size,
			"populate", populate,
		)
	}
}

// LogUnmap logs a mapper release. Release failures are only ever visible here
// and in MetricsCollector.RecordUnmap.
func (l *Logger) LogUnmap(ctx context.Context, path string, size int, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.WarnContext(ctx, "unmap failed",
			"path", path,
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "unmap completed",
			"path", path,
			"size", size,
		)
	}
}

// LogTransfer logs a failed descriptor transfer. Successful transfers are
// too frequent to log; use a MetricsCollector for those.
func (l *Logger) LogTransfer(ctx context.Context, op string, bytes int64, calls int, err error) {
	if l == nil || err == nil {
		return
	}
	l.ErrorContext(ctx, "transfer failed",
		"op", op,
		"bytes", bytes,
		"calls", calls,
		"error", err,
	)
}
