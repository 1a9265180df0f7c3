// Package rlog is a thin wrapper over log/slog for the pieces of this
// module that do I/O and therefore have something worth logging; the demo
// command is its only user. The hot per-pixel rasterizer loop never
// imports this package.
package rlog

import (
	"log/slog"
	"os"
)

// Logger wraps *slog.Logger. The zero value is not usable; construct one
// with New or Default.
type Logger struct {
	l *slog.Logger
}

// New builds a Logger writing text-formatted records to w at the given
// level. If w is nil, os.Stderr is used.
func New(w *os.File, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return Logger{l: slog.New(handler)}
}

// Default returns a Logger backed by slog.Default(), mirroring the
// "nil means use the default logger" convention used elsewhere for
// optional loggers.
func Default() Logger {
	return Logger{l: slog.Default()}
}

func (lg Logger) Info(msg string, args ...any)  { lg.l.Info(msg, args...) }
func (lg Logger) Warn(msg string, args ...any)  { lg.l.Warn(msg, args...) }
func (lg Logger) Error(msg string, args ...any) { lg.l.Error(msg, args...) }
func (lg Logger) Debug(msg string, args ...any) { lg.l.Debug(msg, args...) }

// With returns a Logger that annotates every record with the given
// key-value attributes, for per-frame or per-draw context.
func (lg Logger) With(args ...any) Logger {
	return Logger{l: lg.l.With(args...)}
}
