// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the run command, which executes a scenario file.
package run

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/conductor/cmd/cmdstate"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/scenario"
	"github.com/urfave/cli/v3"
)

const outFlag = "out"

// ErrWriteOutput is returned when the report file cannot be written.
var ErrWriteOutput = errors.New("failed to write report file")

// RunCmd is the command that runs a scenario.
var RunCmd = &cli.Command{
	Name:  "run",
	Usage: "Run a scenario file",
	Description: `Run the steps of a YAML or HCL scenario against a fresh invoker and queue.
The file may be a local path or any go-getter source, for example
git::https://github.com/org/repo//scenarios/movie.yaml?ref=main`,
	Flags: []cli.Flag{
		cmdstate.FileFlagDef("Scenario file path or go-getter URL"),
		cmdstate.VarFlagDef(),
		&cli.StringFlag{
			Name:      outFlag,
			Aliases:   []string{"o"},
			Usage:     "Also write the report to this file as YAML",
			TakesFile: true,
		},
		cmdstate.LogFileFlagDef(),
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	vars, err := cmdstate.ParseVars(cmd.StringSlice(cmdstate.VarFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx, closeLog, err := cmdstate.WithLogFile(ctx, cmd.String(cmdstate.LogFileFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	defer closeLog()

	reg, err := cmdstate.Registry(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	src := cmd.String(cmdstate.FileFlag)

	data, name, err := scenario.Fetch(ctx, src)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to fetch %s: %s", src, err), 1)
	}

	def, err := scenario.Parse(name, data, vars)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to parse %s: %s", src, err), 1)
	}

	s, err := scenario.Build(ctx, def, reg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to build %s: %s", src, err), 1)
	}

	ctx = ctxlog.With(ctx, "scenario", s.Name)
	ctxlog.Info(ctx, "running scenario", "steps", len(s.Steps))

	report, runErr := s.Run(ctx)

	if out := cmd.String(outFlag); out != "" {
		if err := writeReportFile(out, report); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	if err := report.WriteText(cmd.Root().Writer); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if runErr != nil {
		return cli.Exit(fmt.Sprintf("scenario %q failed: %s", s.Name, runErr), 1)
	}

	return nil
}

func writeReportFile(path string, report *scenario.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	defer f.Close() //nolint:errcheck

	if err := report.WriteYAML(f); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}
