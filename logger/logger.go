// Package logger builds the slog logger used by the tspsolve command.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFilePath is used when Output is "file" and FilePath is empty.
const DefaultFilePath = "logs/tspsolve.log"

// Config describes the handler and destination.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New returns a logger writing to the configured destination. File output
// rotates through lumberjack; if the directory cannot be created it falls
// back to stderr.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(cfg, writerFor(cfg))
}

// NewWithWriter returns a logger writing to w, ignoring cfg.Output.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// ParseLevel maps a level name to slog; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRunID tags every record of one solver invocation.
func WithRunID(l *slog.Logger, runID string) *slog.Logger {
	return l.With("run_id", runID)
}

func writerFor(cfg Config) io.Writer {
	switch cfg.Output {
	case "stdout":
		return os.Stdout
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return os.Stderr
		}
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	default:
		return os.Stderr
	}
}
