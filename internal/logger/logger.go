// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-awl-bridge application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Service loggers write JSON lines to stdout. Log files (trace, access and
// monitor logs) are rotated by lumberjack.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	files []io.Closer
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout with every level enabled. The entries carry "role", timestamp
// and "func" (caller function name) fields.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	return &Logger{Logger: newZerolog(os.Stdout, role)}
}

// NewServiceLogger constructs the main logger of a long-running process.
//
// Entries at cfg.Level or above go to os.Stdout. When cfg.TraceLog is set,
// every entry down to debug level is additionally written to the rotated
// file cfg.Directory/cfg.TraceLog.
func NewServiceLogger(role string, cfg config.Log) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.TraceLog == "" {
		zerolog.SetGlobalLevel(level)
		return &Logger{Logger: newZerolog(os.Stdout, role)}, nil
	}

	trace, err := rotatingFile(cfg, cfg.TraceLog)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	out := zerolog.MultiLevelWriter(
		&levelFilter{w: os.Stdout, min: level},
		trace,
	)

	return &Logger{Logger: newZerolog(out, role), files: []io.Closer{trace}}, nil
}

// NewAccessLogger returns the logger that records one entry per HTTP
// request. With an empty cfg.AccessLog the entries go to parent instead of a
// separate file.
func NewAccessLogger(parent *Logger, cfg config.Log) (*Logger, error) {
	if cfg.AccessLog == "" {
		return &Logger{Logger: parent.With().Str("log", "access").Logger()}, nil
	}

	file, err := rotatingFile(cfg, cfg.AccessLog)
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zerolog.New(file).With().Timestamp().Logger(),
		files:  []io.Closer{file},
	}, nil
}

// NewClientLogger constructs the logger of the terminal monitor. The monitor
// owns the terminal, so entries are written to cfg.Directory/monitor.log and
// never to stdout.
func NewClientLogger(role string, cfg config.Log) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	if cfg.Directory == "" {
		execPath, _ := os.Executable()
		cfg.Directory = filepath.Join(filepath.Dir(execPath), "logs")
	}

	file, err := rotatingFile(cfg, "monitor.log")
	if err != nil {
		return Nop()
	}

	return &Logger{Logger: newZerolog(file, role), files: []io.Closer{file}}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// Close closes the log files opened by the constructor. Child loggers do not
// own files and closing them is a no-op.
func (l *Logger) Close() error {
	var errs []error
	for _, f := range l.files {
		errs = append(errs, f.Close())
	}
	l.files = nil

	return errors.Join(errs...)
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, the returned logger is disabled
// (or zerolog.DefaultContextLogger when one is set). It is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none. Background jobs use it so their contexts do not silence
// the owning service's logger.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	if zl := log.Ctx(ctx); zl != log.Ctx(context.Background()) {
		return &Logger{Logger: *zl}
	}
	if fallback == nil {
		return Nop()
	}
	return fallback
}

func newZerolog(w io.Writer, role string) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}

func rotatingFile(cfg config.Log, name string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}, nil
}

// levelFilter drops entries below min. Writes without level information
// pass through.
type levelFilter struct {
	w   io.Writer
	min zerolog.Level
}

func (f *levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f *levelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < f.min {
		return len(p), nil
	}
	return f.w.Write(p)
}
