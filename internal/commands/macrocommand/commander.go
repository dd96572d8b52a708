// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package macrocommand provides a command type that executes a list of commands in order.
package macrocommand

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var _ commands.Commander = (*Commander)(nil)

var (
	// ErrNilFactory is returned when a macro is created without a factory to build its children.
	ErrNilFactory = errors.New("macro requires a command factory to create its children")
	// ErrCommandsAndGroup is returned when a macro sets both commands and command_group.
	ErrCommandsAndGroup = errors.New("macro cannot set both commands and command_group")
)

// Commander is a struct that implements the commands.Commander interface.
type Commander struct{}

// Create creates a new macro command and implements the commands.Commander interface.
func (c *Commander) Create(
	ctx context.Context, factory commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(Definition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	if factory == nil {
		return nil, errors.Join(commands.NewErrCommandCreate(commandType), ErrNilFactory)
	}

	children := def.Commands

	if def.CommandGroup != "" {
		if len(def.Commands) > 0 {
			return nil, errors.Join(commands.NewErrCommandCreate(commandType), ErrCommandsAndGroup)
		}

		group, err := factory.ResolveCommandGroup(def.CommandGroup)
		if err != nil {
			return nil, errors.Join(commands.NewErrCommandCreate(commandType), err)
		}

		children = group
	}

	cmds := make([]command.Command, 0, len(children))

	for i, child := range children {
		childYAML, err := yaml.Marshal(child)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal command %d: %w", i, err)
		}

		cmd, err := factory.CreateCommandFromYAML(ctx, home, childYAML)
		if err != nil {
			return nil, fmt.Errorf("failed to create command %d: %w", i, err)
		}

		cmds = append(cmds, cmd)
	}

	return command.NewMacro(def.Name, cmds...), nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	return "Executes a list of commands in order, stopping at the first failure. It cannot be undone"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &Definition{
		BaseDefinition: commands.BaseDefinition{
			Type: commandType,
			Name: "movie night",
		},
		Commands: []any{
			map[string]any{
				"type":   "light-off",
				"device": "lounge",
			},
			map[string]any{
				"type":   "tv-on",
				"device": "tv",
			},
		},
	}
}
