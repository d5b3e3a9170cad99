// Package logger builds the slog loggers used by the command line and the
// interactive browser. The codec packages never log.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Errorf(`unknown log level "%s"`, level)
}

func New(w io.Writer, level string, format string) (*slog.Logger, error) {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "logger.New error")
	}
	opts := &slog.HandlerOptions{Level: slogLevel}
	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, errors.Errorf(`logger.New error: unknown log format "%s"`, format)
}

// Discard drops every record; handy for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
