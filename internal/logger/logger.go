package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog and adds Fatal for unrecoverable startup errors.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing text records to stdout at the given slog level.
func New(level int) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter returns a Logger writing to w. Tests pass io.Discard.
func NewWithWriter(w io.Writer, level int) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.Level(level),
	})
	return &Logger{Logger: slog.New(handler)}
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
