// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lightcommand provides commands that switch a light on and off.
package lightcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var _ commands.Commander = (*Commander)(nil)

// Commander creates light commands. It serves both the on and off command types.
type Commander struct {
	commandType string
}

// NewCommander creates a Commander for commandType, either "light-on" or "light-off".
func NewCommander(commandType string) *Commander {
	return &Commander{commandType: commandType}
}

// Create implements commands.Commander.
func (c *Commander) Create(
	_ context.Context, _ commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(Definition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	light, err := commands.LookupDevice[*devices.Light](home, &def.BaseDefinition)
	if err != nil {
		return nil, err
	}

	if c.commandType == commandTypeOff {
		return NewOff(def.Name, light), nil
	}

	return NewOn(def.Name, light), nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	if c.commandType == commandTypeOff {
		return "Switches a light off, undo switches it back on"
	}

	return "Switches a light on, undo switches it back off"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &Definition{
		BaseDefinition: commands.BaseDefinition{
			Type:   c.commandType,
			Device: "lounge",
		},
	}
}
