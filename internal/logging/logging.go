package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const appName = "cpu-scheduler"

// Options selects how records are written. The zero value logs info records as text to stderr,
// leaving stdout to the schedules printed by the cli.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	Writer io.Writer
}

// New builds the process logger. Every record carries the app name so that the
// api and cli logs can be told apart from fiber's own output.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}

	return slog.New(handler).With("app", appName), nil
}

// ParseLevel treats an empty string as info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
