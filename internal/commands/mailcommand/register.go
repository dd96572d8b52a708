// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mailcommand

import "github.com/matt-FFFFFF/conductor/internal/commands"

// Register registers the send-mail command type with the factory.
func Register(f commands.CommanderFactory) error {
	return f.Register(commandType, &Commander{})
}
