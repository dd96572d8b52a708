// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package validate contains the validate command, which checks a scenario file without running it.
package validate

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/conductor/cmd/cmdstate"
	"github.com/matt-FFFFFF/conductor/internal/scenario"
	"github.com/urfave/cli/v3"
)

// ValidateCmd is the command that validates a scenario.
var ValidateCmd = &cli.Command{
	Name:        "validate",
	Usage:       "Check a local scenario file without running it",
	Description: "Parse and build a scenario and report every problem found.",
	Flags: []cli.Flag{
		cmdstate.FileFlagDef("Scenario file path"),
		cmdstate.VarFlagDef(),
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	vars, err := cmdstate.ParseVars(cmd.StringSlice(cmdstate.VarFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	reg, err := cmdstate.Registry(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	path := cmd.String(cmdstate.FileFlag)

	def, err := scenario.LoadFile(path, vars)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	s, err := scenario.Build(ctx, def, reg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "%s: scenario %q is valid, %d devices, %d steps\n",
		path, s.Name, s.Home.Len(), len(s.Steps))

	return err //nolint:wrapcheck
}
