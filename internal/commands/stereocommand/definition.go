// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stereocommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Definition represents the YAML configuration for the stereo on and off commands.
type Definition struct {
	commands.BaseDefinition `yaml:",inline"`
}

// VolumeDefinition represents the YAML configuration for the set-volume command.
type VolumeDefinition struct {
	commands.BaseDefinition `yaml:",inline"`
	// Level is the volume to set, 0 to 11.
	Level *int `yaml:"level"`
}
