// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package printcommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Register registers the print command type with the factory.
func Register(f commands.CommanderFactory) error {
	return f.Register(commandType, &Commander{})
}
