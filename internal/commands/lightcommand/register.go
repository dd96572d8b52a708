// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lightcommand

import (
	"errors"

	"github.com/matt-FFFFFF/conductor/internal/commands"
)

const (
	commandTypeOn  = "light-on"
	commandTypeOff = "light-off"
)

// Register registers the light command types with the factory.
func Register(f commands.CommanderFactory) error {
	return errors.Join(
		f.Register(commandTypeOn, NewCommander(commandTypeOn)),
		f.Register(commandTypeOff, NewCommander(commandTypeOff)),
	)
}
