// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repl contains the repl command, an interactive shell over an invoker and a queue.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/conductor/cmd/cmdstate"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

// ReplCmd starts the interactive shell.
var ReplCmd = &cli.Command{
	Name:  "repl",
	Usage: "Drive an invoker and a queue interactively",
	Description: `Start a shell over a home with one device of each kind,
named light, mailer, printer, stereo and tv. Type help for the commands.`,
	Flags: []cli.Flag{
		cmdstate.LogFileFlagDef(),
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx, closeLog, err := cmdstate.WithLogFile(ctx, cmd.String(cmdstate.LogFileFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	defer closeLog()

	reg, err := cmdstate.Registry(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := cmd.Root().Writer

	s := NewSession(reg, devices.DefaultHome(), w)

	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)
	fmt.Fprintln(w, "Type help for the commands, quit or exit or Ctrl+C to leave.")

	for ctx.Err() == nil {
		input, err := line.Prompt("conductor> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w, "Aborted")
			return nil
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		line.AppendHistory(input)

		quit, err := s.Exec(ctx, input)
		if err != nil {
			s.PrintError(err)
		}

		if quit {
			return nil
		}
	}

	return nil
}
