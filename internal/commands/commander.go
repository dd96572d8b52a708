// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"iter"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

// Commander creates a command of one type from its YAML definition.
type Commander interface {
	// Create builds the command. Receivers are looked up in home.
	// The factory is used by composite commands to build their children.
	Create(ctx context.Context, factory CommanderFactory, home *devices.Home, payload []byte) (command.Command, error)
	// Description returns a one line description of the command type.
	Description() string
	// Example returns an example definition, suitable for YAML marshaling.
	Example() any
}

// CommanderFactory looks up commanders by command type and builds commands from YAML.
type CommanderFactory interface {
	// Get returns the commander registered for commandType.
	Get(commandType string) (Commander, bool)
	// Register adds a commander for commandType.
	Register(commandType string, commander Commander) error
	// Iter iterates over the registered commanders in command type order.
	Iter() iter.Seq2[string, Commander]
	// CreateCommandFromYAML builds a command from a YAML definition carrying a `type` field.
	CreateCommandFromYAML(ctx context.Context, home *devices.Home, payload []byte) (command.Command, error)
	// ResolveCommandGroup returns the command definitions of a named group.
	ResolveCommandGroup(name string) ([]any, error)
}

// FactoryContextKey is the context key under which the CLI stores the CommanderFactory.
type FactoryContextKey struct{}
