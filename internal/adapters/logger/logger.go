// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger on log/slog. Records go to a console handler and,
// when opened with a path, to an append-only text file as well.
type Logger struct {
	console *slog.Logger
	file    *slog.Logger
	closer  io.Closer
	once    sync.Once
}

// New creates a Logger writing pretty records to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		console: slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Open creates a Logger like New that also appends every record, debug included,
// to the file at path. An empty path opens no file.
func Open(w io.Writer, level slog.Level, path string) (*Logger, error) {
	l := New(w, level)
	if path == "" {
		return l, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm) //nolint:gosec // path comes from settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}

	l.file = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.closer = f
	return l, nil
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string, attrs ...any) {
	l.log(slog.LevelDebug, msg, attrs...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, attrs ...any) {
	l.log(slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, attrs ...any) {
	l.log(slog.LevelWarn, msg, attrs...)
}

// Error logs err with its cause chain on the console and its metadata as fields in the file.
func (l *Logger) Error(err error, attrs ...any) {
	if err == nil {
		return
	}

	l.console.Error(formatErrorEntries(collectErrorEntries(err)), attrs...)
	if l.file != nil {
		zerr.Log(context.Background(), l.file.With(attrs...), err)
	}
}

// Close closes the log file, if any. It is safe to call more than once.
func (l *Logger) Close() error {
	var err error
	l.once.Do(func() {
		if l.closer != nil {
			err = l.closer.Close()
		}
	})
	return err
}

func (l *Logger) log(level slog.Level, msg string, attrs ...any) {
	ctx := context.Background()
	l.console.Log(ctx, level, msg, attrs...)
	if l.file != nil {
		l.file.Log(ctx, level, msg, attrs...)
	}
}
