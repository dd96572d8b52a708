// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macrocommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Definition represents the YAML configuration for the macro command.
// Children come either from an inline list or from a named command group.
type Definition struct {
	commands.BaseDefinition `yaml:",inline"`
	// Commands is the list of child command definitions, executed in order.
	Commands []any `yaml:"commands,omitempty"`
	// CommandGroup names a group of command definitions to use as the children.
	CommandGroup string `yaml:"command_group,omitempty"`
}
