// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package printcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var _ command.Command = (*Print)(nil)

// Print sends a document to a printer. It cannot be undone.
type Print struct {
	label   string
	printer *devices.Printer
	text    string
}

// New creates a command that prints text on printer.
func New(label string, printer *devices.Printer, text string) *Print {
	if label == "" {
		label = "print " + text
	}

	return &Print{label: label, printer: printer, text: text}
}

// Label implements command.Labeller.
func (c *Print) Label() string {
	return c.label
}

// Text returns the document the command prints.
func (c *Print) Text() string {
	return c.text
}

// Execute implements command.Command.
func (c *Print) Execute(ctx context.Context) error {
	if c.printer == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "printing", "printer", c.printer.Name, "text", c.text)
	return c.printer.Print(c.text)
}
