package sfmgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sfmgo-specific context.
// This provides structured logging with consistent field names.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithAddr adds the listener address to the logger.
func (l *Logger) WithAddr(addr string) *Logger {
	return &Logger{
		Logger: l.Logger.With("addr", addr),
	}
}

// WithCode adds a command code field to the logger.
func (l *Logger) WithCode(code int) *Logger {
	return &Logger{
		Logger: l.Logger.With("code", code),
	}
}

// LogSend logs a command dispatch.
func (l *Logger) LogSend(code int, param string, err error) {
	if err != nil {
		l.Error("command send failed",
			"code", code,
			"param", param,
			"error", err,
		)
	} else {
		l.Info("command sent",
			"code", code,
			"param", param,
		)
	}
}

// LogWait logs the outcome of a completion wait.
func (l *Logger) LogWait(status WaitStatus, received int) {
	if status == WaitTimedOut {
		l.Warn("completion wait timed out",
			"received_bytes", received,
		)
	} else {
		l.Info("completion marker found",
			"received_bytes", received,
		)
	}
}
