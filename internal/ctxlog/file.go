// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"errors"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrEmptyLogFile is returned when a file logger is requested without a path.
var ErrEmptyLogFile = errors.New("log file path is empty")

// FileOptions controls rotation of a file log.
type FileOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileOptions returns rotation settings suitable for a CLI.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// NewFileLogger returns a logger writing JSON lines to a rotating file at path.
// The returned closer closes the file.
func NewFileLogger(path string, opts FileOptions) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return nil, nil, ErrEmptyLogFile
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
		LocalTime:  true,
	}

	handler := slog.NewJSONHandler(lj, &slog.HandlerOptions{
		Level: LevelVar,
	})

	return slog.New(handler), lj, nil
}
