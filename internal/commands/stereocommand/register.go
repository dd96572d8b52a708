// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stereocommand

import (
	"errors"

	"github.com/matt-FFFFFF/conductor/internal/commands"
)

const (
	commandTypeOn     = "stereo-on"
	commandTypeOff    = "stereo-off"
	commandTypeVolume = "set-volume"
)

// Register registers the stereo command types with the factory.
func Register(f commands.CommanderFactory) error {
	return errors.Join(
		f.Register(commandTypeOn, NewCommander(commandTypeOn)),
		f.Register(commandTypeOff, NewCommander(commandTypeOff)),
		f.Register(commandTypeVolume, &VolumeCommander{}),
	)
}
