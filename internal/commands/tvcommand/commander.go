// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tvcommand provides commands that switch a TV on and off.
package tvcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var _ commands.Commander = (*Commander)(nil)

// Commander creates tv commands.
type Commander struct {
	commandType string
}

// NewCommander creates a Commander for commandType, either "tv-on" or "tv-off".
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

	tv, err := commands.LookupDevice[*devices.TV](home, &def.BaseDefinition)
	if err != nil {
		return nil, err
	}

	if c.commandType == commandTypeOff {
		return NewOff(def.Name, tv), nil
	}

	return NewOn(def.Name, tv), nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	if c.commandType == commandTypeOff {
		return "Switches a TV off, undo switches it back on"
	}

	return "Switches a TV on, undo switches it back off"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &Definition{
		BaseDefinition: commands.BaseDefinition{
			Type:   c.commandType,
			Device: "lounge-tv",
		},
	}
}
