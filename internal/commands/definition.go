// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

// BaseDefinition contains fields common to all command types.
type BaseDefinition struct {
	// Type is the type of command, e.g. "light-on", "print", "macro".
	Type string `yaml:"type"`
	// Name is an optional label for the command.
	Name string `yaml:"name,omitempty"`
	// Device is the name of the receiver in the home, for commands that have one.
	Device string `yaml:"device,omitempty"`
}

// LabelOr returns the definition name, or fallback when the name is empty.
func (d *BaseDefinition) LabelOr(fallback string) string {
	if d.Name != "" {
		return d.Name
	}

	return fallback
}
