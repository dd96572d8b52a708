// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commands contains the commands command, which documents the registered command types.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/conductor/cmd/cmdstate"
	"github.com/matt-FFFFFF/conductor/internal/color"
	"github.com/urfave/cli/v3"
)

const typeArg = "type"

// CommandsCmd lists the command types, or shows one in detail.
var CommandsCmd = &cli.Command{
	Name:  "commands",
	Usage: "List the command types that scenarios can use",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      typeArg,
			UsageText: "[TYPE]",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	reg, err := cmdstate.Registry(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := cmd.Root().Writer
	p := color.For(w)
	sb := &strings.Builder{}

	name := cmd.StringArg(typeArg)
	if name == "" {
		sb.WriteString("Available command types:\n\n")

		for _, t := range reg.Types() {
			c, _ := reg.Get(t)
			fmt.Fprintf(sb, "  %s  %s\n", p.Paint(fmt.Sprintf("%-12s", t), color.Bold), c.Description())
		}

		_, err := fmt.Fprint(w, sb.String())

		return err //nolint:wrapcheck
	}

	c, ok := reg.Get(name)
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown command type %q, run `commands` to list them", name), 1)
	}

	example, err := yaml.Marshal(c.Example())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(sb, "%s\n\n%s\n\n%s\n\n%s", p.Paint(name, color.Bold), c.Description(),
		p.Paint("Example:", color.Bold), string(example))

	_, err = fmt.Fprint(w, sb.String())

	return err //nolint:wrapcheck
}
