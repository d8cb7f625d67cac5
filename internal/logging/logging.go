// Package logging configures structured logging with tint.
//
// The TUI owns the terminal, so records go to a file. With no file the
// logger discards everything.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Setup builds a logger writing to path and installs it as the slog default.
// The returned close func releases the file; it is safe to call when path
// is empty.
func Setup(path string, level slog.Level) (*slog.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := New(w, level).With("session", uuid.NewString())
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// New returns a tint logger on w. Colors are off since w is usually a file.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}))
}

// ParseLevel maps a level name to slog.Level. An empty name falls back to
// LOG_LEVEL, then info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
