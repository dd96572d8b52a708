// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tvcommand

import (
	"errors"

	"github.com/matt-FFFFFF/conductor/internal/commands"
)

const (
	commandTypeOn  = "tv-on"
	commandTypeOff = "tv-off"
)

// Register registers the tv command types with the factory.
func Register(f commands.CommanderFactory) error {
	return errors.Join(
		f.Register(commandTypeOn, NewCommander(commandTypeOn)),
		f.Register(commandTypeOff, NewCommander(commandTypeOff)),
	)
}
