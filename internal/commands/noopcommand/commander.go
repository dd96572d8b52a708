// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package noopcommand provides a command type that does nothing.
// It is useful to clear an invoker slot from a scenario.
package noopcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

const commandType = "noop"

var _ commands.Commander = (*Commander)(nil)

// Commander creates command.NoCommand values.
type Commander struct{}

// Create implements commands.Commander.
func (c *Commander) Create(
	_ context.Context, _ commands.CommanderFactory, _ *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(commands.BaseDefinition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	return command.NoCommand{}, nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	return "Does nothing"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &commands.BaseDefinition{Type: commandType}
}

// Register registers the noop command type with the factory.
func Register(f commands.CommanderFactory) error {
	return f.Register(commandType, &Commander{})
}
