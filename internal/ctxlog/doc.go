// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler to format the log messages in a human-readable way.
// The level is read from an environment variable named after the executable,
// e.g. CONDUCTOR_LOG_LEVEL, and may be DEBUG, INFO, WARN or ERROR.
// NewFileLogger writes JSON lines to a rotating file instead.
package ctxlog
