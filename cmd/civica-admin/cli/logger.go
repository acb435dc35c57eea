// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for a command. When stderr
// is a terminal it uses slog.TextHandler for human-readable output;
// when piped or redirected (scripts, CI) it uses slog.JSONHandler.
//
// quiet suppresses the stderr handler entirely. The console command
// uses it because log lines would corrupt the alternate screen.
//
// logFile optionally names a file that receives JSON records in
// addition to stderr. The returned close function flushes and closes
// that file; it is non-nil even when no file is open.
func NewLogger(logFile string, quiet bool) (*slog.Logger, func() error, error) {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handlers []slog.Handler
	if !quiet {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			handlers = append(handlers, slog.NewTextHandler(os.Stderr, options))
		} else {
			handlers = append(handlers, slog.NewJSONHandler(os.Stderr, options))
		}
	}

	closeFile := func() error { return nil }
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(file, options))
		closeFile = file.Close
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler), closeFile, nil
	case 1:
		return slog.New(handlers[0]), closeFile, nil
	default:
		return slog.New(fanoutHandler(handlers)), closeFile, nil
	}
}

// fanoutHandler duplicates each record to every wrapped handler.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range f {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range f {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make(fanoutHandler, len(f))
	for i, handler := range f {
		wrapped[i] = handler.WithAttrs(attrs)
	}
	return wrapped
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	wrapped := make(fanoutHandler, len(f))
	for i, handler := range f {
		wrapped[i] = handler.WithGroup(name)
	}
	return wrapped
}
