// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tvcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var (
	_ command.Undoer = (*On)(nil)
	_ command.Undoer = (*Off)(nil)
)

// On switches a TV on.
type On struct {
	label string
	tv    *devices.TV
}

// NewOn creates a command that switches tv on.
func NewOn(label string, tv *devices.TV) *On {
	if label == "" {
		label = defaultLabel("tv on", tv)
	}

	return &On{label: label, tv: tv}
}

// Label implements command.Labeller.
func (c *On) Label() string {
	return c.label
}

// Execute implements command.Command.
func (c *On) Execute(ctx context.Context) error {
	if c.tv == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching tv on", "tv", c.tv.Location, "channel", c.tv.Channel())
	c.tv.On()

	return nil
}

// Undo implements command.Undoer.
func (c *On) Undo(ctx context.Context) error {
	if c.tv == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching tv off", "tv", c.tv.Location)
	c.tv.Off()

	return nil
}

// Off switches a TV off.
type Off struct {
	label string
	tv    *devices.TV
}

// NewOff creates a command that switches tv off.
func NewOff(label string, tv *devices.TV) *Off {
	if label == "" {
		label = defaultLabel("tv off", tv)
	}

	return &Off{label: label, tv: tv}
}

// Label implements command.Labeller.
func (c *Off) Label() string {
	return c.label
}

// Execute implements command.Command.
func (c *Off) Execute(ctx context.Context) error {
	if c.tv == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching tv off", "tv", c.tv.Location)
	c.tv.Off()

	return nil
}

// Undo implements command.Undoer.
func (c *Off) Undo(ctx context.Context) error {
	if c.tv == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching tv on", "tv", c.tv.Location)
	c.tv.On()

	return nil
}

func defaultLabel(action string, tv *devices.TV) string {
	if tv == nil {
		return action
	}

	return action + " " + tv.Location
}
