// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Options struct {
	Level  string
	Format string
	// Path, when set, receives a copy of every record.
	Path string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// Logger wraps the slog logger with its level and the open log file.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
	file  *os.File
}

func New(opts Options) (*Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	l := &Logger{Level: &slog.LevelVar{}}
	l.Level.Set(ParseLevel(opts.Level))

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		l.file = f
		out = io.MultiWriter(out, f)
	}

	ho := &slog.HandlerOptions{Level: l.Level}
	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(out, ho)
	} else {
		h = slog.NewTextHandler(out, ho)
	}
	l.Logger = slog.New(h)
	return l, nil
}

// ParseLevel maps a level name to its slog level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// SetDefault installs l as the slog default, so package-level slog calls and
// the standard log package go through the configured handler.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
