// Package logging builds the application logger. The terminal belongs to
// the TUI, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhle/gorev-takip/internal/model"
)

// New builds a logger from cfg. An empty file disables logging. The
// returned closer releases the log file.
func New(cfg model.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	return NewWithWriter(f, level, cfg.Pretty), f, nil
}

// NewWithWriter builds a logger writing to w. Pretty selects the
// human-readable console format.
func NewWithWriter(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	if pretty {
		cw := zerolog.NewConsoleWriter()
		cw.Out = w
		cw.NoColor = true
		cw.TimeFormat = time.DateTime
		w = cw
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
