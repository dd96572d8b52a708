// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilReceiver is returned by Execute or Undo when a command was built without a receiver.
var ErrNilReceiver = errors.New("command has no receiver")

// Command is the unit of work. Execute performs the bound action on the bound receiver.
// The context carries the logger; commands are not expected to observe cancellation.
//
// A nil pointer of a concrete command type stored in a Command is not a valid command.
// Constructors always return a non-nil value, so only hand built zero values can hit this.
type Command interface {
	// Execute performs the bound action. Receiver failures are returned to the caller unmodified.
	Execute(ctx context.Context) error
}

// Undoer is a Command that can reverse its own effect.
type Undoer interface {
	Command
	// Undo performs the logical inverse of Execute.
	Undo(ctx context.Context) error
}

// Labeller is implemented by commands that carry a human readable label.
type Labeller interface {
	Label() string
}

// Label returns the label of a command.
// It falls back to the dynamic type name when the command does not implement Labeller.
func Label(c Command) string {
	switch v := c.(type) {
	case nil:
		return "Unknown"
	case Labeller:
		return v.Label()
	default:
		return fmt.Sprintf("%T", c)
	}
}

// IsUndoable reports whether the command implements Undoer.
func IsUndoable(c Command) bool {
	_, ok := c.(Undoer)
	return ok
}
