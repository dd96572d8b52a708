// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package macrocommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

const commandType = "macro"

// Register registers the macro command type with the factory.
func Register(f commands.CommanderFactory) error {
	return f.Register(commandType, &Commander{})
}
