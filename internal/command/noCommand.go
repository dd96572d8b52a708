// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import "context"

var _ Undoer = NoCommand{}

// NoCommand is the null command. Execute and Undo do nothing and never fail.
type NoCommand struct{}

// Execute implements the Command interface for NoCommand.
func (NoCommand) Execute(_ context.Context) error {
	return nil
}

// Undo implements the Undoer interface for NoCommand.
func (NoCommand) Undo(_ context.Context) error {
	return nil
}

// Label implements the Labeller interface for NoCommand.
func (NoCommand) Label() string {
	return "NoCommand"
}

// IsNoCommand reports whether c is nil or the null command.
func IsNoCommand(c Command) bool {
	switch c.(type) {
	case nil, NoCommand, *NoCommand:
		return true
	default:
		return false
	}
}
