// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package printcommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Definition represents the YAML configuration for the print command.
type Definition struct {
	commands.BaseDefinition `yaml:",inline"`
	// Text is the document to print.
	Text string `yaml:"text"`
}
