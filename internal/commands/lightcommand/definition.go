// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lightcommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Definition represents the YAML configuration for the light commands.
// The light is named by the device field.
type Definition struct {
	commands.BaseDefinition `yaml:",inline"`
}
