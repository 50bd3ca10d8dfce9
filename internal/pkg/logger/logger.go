// Package logger builds the process logger. Records go to a file when one is
// configured and to the fallback writer (stderr in production) otherwise,
// so console prompts on stdout stay clean.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const DefaultLevel = slog.LevelWarn

type Config struct {
	// Level is one of debug, info, warn, error. Empty means DefaultLevel.
	Level string
	// File, when set, receives all records instead of the fallback writer.
	File string
	// Debug forces the debug level and adds source locations.
	Debug bool
}

// ParseLevel maps a level name to a slog.Level. Names are case-insensitive.
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return DefaultLevel, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return DefaultLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// Setup returns a text logger per cfg and a cleanup func that closes the log
// file, if any. The cleanup is never nil.
func Setup(cfg Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	out := fallback
	cleanup := noop
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, noop, err
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, noop, err
		}
		out = f
		cleanup = f.Close
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))
	l.Debug("logger.initialized", "level", level.String(), "file", cfg.File)

	return l, cleanup, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func noop() error { return nil }
