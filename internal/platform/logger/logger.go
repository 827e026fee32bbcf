// Package logger provides structured logging for the pet engine.
// Every state change made by the engine should be traceable through this.
package logger

import (
	"io"
	"log/slog"
)

// Logger provides structured logging with context.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a logger writing text records to w.
// The terminal usually belongs to the UI, so w is normally a log file.
func NewLogger(w io.Writer) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{log: slog.New(h).With("component", "pet")}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return NewLogger(io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Error logs error messages.
func (l *Logger) Error(msg string, args ...any) {
	l.log.Error(msg, args...)
}

// Event logs a specific engine event.
func (l *Logger) Event(eventType string, actorID string, details string) {
	l.log.Info("event", "type", eventType, "actor", actorID, "details", details)
}
