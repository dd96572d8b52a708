// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
)

var _ Command = (*MacroCommand)(nil)

// MacroError is returned when a child of a MacroCommand fails.
// Children before Index have already executed and are not rolled back.
type MacroError struct {
	Macro string // Label of the macro
	Index int    // Position of the failing child
	Child string // Label of the failing child
	Err   error  // Error returned by the child
}

// Error implements the error interface for MacroError.
func (e *MacroError) Error() string {
	return fmt.Sprintf("macro %q: child %d (%s) failed: %v", e.Macro, e.Index, e.Child, e.Err)
}

// Unwrap returns the error of the failing child.
func (e *MacroError) Unwrap() error {
	return e.Err
}

// MacroCommand is a command composed of an ordered list of commands.
// The children are fixed at construction time.
// MacroCommand does not implement Undoer.
type MacroCommand struct {
	label    string
	children []Command
}

// NewMacro creates a MacroCommand from a copy of the supplied children.
// Nil children are stored as NoCommand.
func NewMacro(label string, children ...Command) *MacroCommand {
	cloned := slices.Clone(children)
	for i, c := range cloned {
		if c == nil {
			cloned[i] = NoCommand{}
		}
	}

	return &MacroCommand{
		label:    label,
		children: cloned,
	}
}

// Label implements the Labeller interface.
func (m *MacroCommand) Label() string {
	if m.label == "" {
		return "Macro"
	}

	return m.label
}

// Children returns a copy of the child commands in execution order.
func (m *MacroCommand) Children() []Command {
	return slices.Clone(m.children)
}

// Len returns the number of children.
func (m *MacroCommand) Len() int {
	return len(m.children)
}

// Execute runs each child in order.
// The first failing child stops the macro and its error is returned as a *MacroError.
func (m *MacroCommand) Execute(ctx context.Context) error {
	logger := ctxlog.Logger(ctx).
		With("commandType", "macroCommand").
		With("label", m.Label())

	logger.Debug("executing macro", "children", len(m.children))

	for i, child := range slices.All(m.children) {
		if err := child.Execute(ctx); err != nil {
			logger.Debug("macro child failed", "index", i, "child", Label(child), "error", err)

			return &MacroError{
				Macro: m.Label(),
				Index: i,
				Child: Label(child),
				Err:   err,
			}
		}
	}

	return nil
}
