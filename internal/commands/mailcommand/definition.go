// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mailcommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Definition represents the YAML configuration for the send-mail command.
type Definition struct {
	commands.BaseDefinition `yaml:",inline"`
	To                      string `yaml:"to"`
	Subject                 string `yaml:"subject,omitempty"`
	Body                    string `yaml:"body,omitempty"`
}
