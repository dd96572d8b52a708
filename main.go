// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the conductor command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/conductor/cmd"
	"github.com/matt-FFFFFF/conductor/cmd/cmdstate"
	"github.com/matt-FFFFFF/conductor/internal/allcommands"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/signalbroker"
)

const forcedExitCode = 130

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	ctx, stop := signalbroker.Start(ctx, func() {
		ctxlog.Error(ctx, "forced exit")
		os.Exit(forcedExitCode)
	})

	ctx = cmdstate.WithRegistry(ctx, allcommands.NewRegistry())

	err := cmd.RootCmd.Run(ctx, os.Args) // exit errors are handled by the cli framework

	cancelled := ctx.Err() != nil

	stop()

	if cancelled {
		ctxlog.Error(ctx, "command terminated due to cancellation")
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
