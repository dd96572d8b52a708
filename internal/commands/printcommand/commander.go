// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package printcommand provides a command that prints a document.
package printcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

const commandType = "print"

var _ commands.Commander = (*Commander)(nil)

// Commander creates print commands.
type Commander struct{}

// Create implements commands.Commander.
func (c *Commander) Create(
	_ context.Context, _ commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(Definition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	printer, err := commands.LookupDevice[*devices.Printer](home, &def.BaseDefinition)
	if err != nil {
		return nil, err
	}

	return New(def.Name, printer, def.Text), nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	return "Prints a document, cannot be undone"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &Definition{
		BaseDefinition: commands.BaseDefinition{
			Type:   commandType,
			Device: "office-printer",
		},
		Text: "quarterly report",
	}
}
