package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/andrescamacho/starship-engine/internal/infrastructure/config"
)

// SlogLogger adapts slog to the handler-facing Logger interface.
// Metadata keys become attributes, sorted so output is stable.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger writes records at or above level to w in the given format (json or text)
func NewSlogLogger(w io.Writer, level, format string) (*SlogLogger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}

	return &SlogLogger{logger: slog.New(handler)}, nil
}

// Open builds a logger from configuration. The returned close func releases
// the log file when output is "file" and is a no-op otherwise.
func Open(fs afero.Fs, cfg *config.LoggingConfig) (*SlogLogger, func() error, error) {
	noop := func() error { return nil }

	var w io.Writer
	closeFn := noop
	switch cfg.Output {
	case "stdout":
		w = os.Stdout
	case "stderr", "":
		w = os.Stderr
	case "file":
		if err := fs.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := fs.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	default:
		return nil, noop, fmt.Errorf("unknown log output: %s", cfg.Output)
	}

	logger, err := NewSlogLogger(w, cfg.Level, cfg.Format)
	if err != nil {
		_ = closeFn()
		return nil, noop, err
	}
	return logger, closeFn, nil
}

// Log implements common.Logger
func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	l.logger.LogAttrs(context.Background(), lvl, message, attrs...)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
}
