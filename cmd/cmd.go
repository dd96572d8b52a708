// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"fmt"
	"os"

	"github.com/matt-FFFFFF/conductor"
	"github.com/matt-FFFFFF/conductor/cmd/commands"
	"github.com/matt-FFFFFF/conductor/cmd/repl"
	"github.com/matt-FFFFFF/conductor/cmd/run"
	"github.com/matt-FFFFFF/conductor/cmd/validate"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		commands.CommandsCmd,
		repl.ReplCmd,
		run.RunCmd,
		validate.ValidateCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "conductor",
	Version:   fmt.Sprintf("%s (commit: %s)", conductor.Version, conductor.Commit),
	Description: `Conductor drives home devices through command objects.
Scenarios, written in YAML or HCL, set and trigger commands on an invoker
with single level undo, or queue them for batch processing.`,
	Usage:     "conductor run -f scenario.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
