// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invoker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/conductor/internal/command"
)

// ErrSlotOutOfRange is returned when a remote slot index does not exist.
var ErrSlotOutOfRange = errors.New("remote slot out of range")

// DefaultSlots is the number of slots of a Remote created with a non-positive size.
const DefaultSlots = 7

// Remote is a remote control with numbered slots, each holding an on and an off command.
// Empty slots hold NoCommand. Buttons are pressed through an Invoker, so only the last
// pressed button can be undone.
type Remote struct {
	on      []command.Command
	off     []command.Command
	invoker *Invoker
}

// NewRemote creates a Remote with the given number of slots.
func NewRemote(slots int, opts ...Option) *Remote {
	if slots <= 0 {
		slots = DefaultSlots
	}

	r := &Remote{
		on:      make([]command.Command, slots),
		off:     make([]command.Command, slots),
		invoker: New(opts...),
	}

	for i := range slots {
		r.on[i] = command.NoCommand{}
		r.off[i] = command.NoCommand{}
	}

	return r
}

// Slots returns the number of slots.
func (r *Remote) Slots() int {
	return len(r.on)
}

// SetSlot binds the on and off commands of a slot. Nil commands reset to NoCommand.
func (r *Remote) SetSlot(slot int, on, off command.Command) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	if on == nil {
		on = command.NoCommand{}
	}

	if off == nil {
		off = command.NoCommand{}
	}

	r.on[slot] = on
	r.off[slot] = off

	return nil
}

// PressOn triggers the on command of a slot.
func (r *Remote) PressOn(ctx context.Context, slot int) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	r.invoker.SetCommand(r.on[slot])

	return r.invoker.Trigger(ctx)
}

// PressOff triggers the off command of a slot.
func (r *Remote) PressOff(ctx context.Context, slot int) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	r.invoker.SetCommand(r.off[slot])

	return r.invoker.Trigger(ctx)
}

// PressUndo undoes the last pressed button.
func (r *Remote) PressUndo(ctx context.Context) (bool, error) {
	return r.invoker.UndoLast(ctx)
}

// String renders the slot bindings, one slot per line.
func (r *Remote) String() string {
	sb := strings.Builder{}
	sb.WriteString("------ Remote Control ------\n")

	for i := range r.on {
		fmt.Fprintf(&sb, "[slot %d] %-24s %s\n", i, command.Label(r.on[i]), command.Label(r.off[i]))
	}

	undo := "none"
	if last := r.invoker.History().Last(); last != nil {
		undo = command.Label(last)
	}

	fmt.Fprintf(&sb, "[undo]   %s\n", undo)

	return sb.String()
}

func (r *Remote) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.on) {
		return fmt.Errorf("%w: %d (slots: %d)", ErrSlotOutOfRange, slot, len(r.on))
	}

	return nil
}
