// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lightcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var (
	_ command.Undoer   = (*On)(nil)
	_ command.Undoer   = (*Off)(nil)
	_ command.Labeller = (*On)(nil)
	_ command.Labeller = (*Off)(nil)
)

// On switches a light on. Undo switches it off again.
type On struct {
	label string
	light *devices.Light
}

// NewOn creates a command that switches light on.
// An empty label defaults to "light on <location>".
func NewOn(label string, light *devices.Light) *On {
	if label == "" {
		label = defaultLabel("light on", light)
	}

	return &On{label: label, light: light}
}

// Label implements command.Labeller.
func (c *On) Label() string {
	return c.label
}

// Execute implements command.Command.
func (c *On) Execute(ctx context.Context) error {
	if c.light == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching light on", "light", c.light.Location)
	c.light.On()

	return nil
}

// Undo implements command.Undoer.
func (c *On) Undo(ctx context.Context) error {
	if c.light == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching light off", "light", c.light.Location)
	c.light.Off()

	return nil
}

// Off switches a light off. Undo switches it on again.
type Off struct {
	label string
	light *devices.Light
}

// NewOff creates a command that switches light off.
func NewOff(label string, light *devices.Light) *Off {
	if label == "" {
		label = defaultLabel("light off", light)
	}

	return &Off{label: label, light: light}
}

// Label implements command.Labeller.
func (c *Off) Label() string {
	return c.label
}

// Execute implements command.Command.
func (c *Off) Execute(ctx context.Context) error {
	if c.light == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching light off", "light", c.light.Location)
	c.light.Off()

	return nil
}

// Undo implements command.Undoer.
func (c *Off) Undo(ctx context.Context) error {
	if c.light == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching light on", "light", c.light.Location)
	c.light.On()

	return nil
}

func defaultLabel(action string, light *devices.Light) string {
	if light == nil {
		return action
	}

	return action + " " + light.Location
}
