// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the state and flags shared by the CLI commands.
// The command registry travels in the context under commands.FactoryContextKey.
package cmdstate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/conductor/internal/commandregistry"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// Flag names shared by several commands.
const (
	FileFlag    = "file"
	VarFlag     = "var"
	LogFileFlag = "log-file"
)

var (
	// ErrNoRegistry is returned when the context holds no command registry.
	ErrNoRegistry = errors.New("failed to get command registry from context")
	// ErrInvalidVar is returned when a --var value is not in key=value form.
	ErrInvalidVar = errors.New("invalid variable, use key=value")
)

// WithRegistry stores the registry in the context.
func WithRegistry(ctx context.Context, reg *commandregistry.Registry) context.Context {
	return context.WithValue(ctx, commands.FactoryContextKey{}, reg)
}

// Registry returns the registry stored by WithRegistry.
func Registry(ctx context.Context) (*commandregistry.Registry, error) {
	reg, ok := ctx.Value(commands.FactoryContextKey{}).(*commandregistry.Registry)
	if !ok || reg == nil {
		return nil, ErrNoRegistry
	}

	return reg, nil
}

// ParseVars turns key=value pairs into a map. Later keys win.
func ParseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")

		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVar, p)
		}

		vars[k] = v
	}

	return vars, nil
}

// WithLogFile replaces the context logger with one writing to a rotating file at path.
// An empty path leaves the context unchanged. Call the returned func to close the file.
func WithLogFile(ctx context.Context, path string) (context.Context, func(), error) {
	if path == "" {
		return ctx, func() {}, nil
	}

	logger, closer, err := ctxlog.NewFileLogger(path, ctxlog.DefaultFileOptions())
	if err != nil {
		return ctx, func() {}, err
	}

	return ctxlog.New(ctx, logger), func() { _ = closer.Close() }, nil
}

// FileFlagDef is the --file flag.
func FileFlagDef(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:      FileFlag,
		Aliases:   []string{"f"},
		Usage:     usage,
		Required:  true,
		TakesFile: true,
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

// VarFlagDef is the repeatable --var flag.
func VarFlagDef() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  VarFlag,
		Usage: "Set a scenario variable as key=value, available as var.key in templates",
	}
}

// LogFileFlagDef is the --log-file flag.
func LogFileFlagDef() cli.Flag {
	return &cli.StringFlag{
		Name:      LogFileFlag,
		Usage:     "Also write JSON logs to this file, rotated by size",
		TakesFile: true,
	}
}
