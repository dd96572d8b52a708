// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stereocommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var (
	_ command.Undoer = (*On)(nil)
	_ command.Undoer = (*Off)(nil)
	_ command.Undoer = (*SetVolume)(nil)
)

// snapshot is the stereo state captured before a command changes it.
type snapshot struct {
	on     bool
	cd     bool
	volume int
}

func capture(s *devices.Stereo) snapshot {
	return snapshot{on: s.IsOn(), cd: s.CD(), volume: s.Volume()}
}

func (snap snapshot) restore(s *devices.Stereo) error {
	if snap.on {
		s.On()
	} else {
		s.Off()
	}

	if snap.cd {
		s.SetCD()
	} else {
		s.SetRadio()
	}

	return s.SetVolume(snap.volume)
}

// On switches a stereo on with the CD input selected at full volume.
// Undo restores the state the stereo had before the last Execute.
type On struct {
	label  string
	stereo *devices.Stereo
	prev   snapshot
}

// NewOn creates a command that switches stereo on, selects the CD and sets the volume to devices.MaxVolume.
func NewOn(label string, stereo *devices.Stereo) *On {
	if label == "" {
		label = defaultLabel("stereo on", stereo)
	}

	return &On{label: label, stereo: stereo}
}

// Label implements command.Labeller.
func (c *On) Label() string {
	return c.label
}

// Execute implements command.Command.
func (c *On) Execute(ctx context.Context) error {
	if c.stereo == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching stereo on", "stereo", c.stereo.Location)

	c.prev = capture(c.stereo)
	c.stereo.On()
	c.stereo.SetCD()

	return c.stereo.SetVolume(devices.MaxVolume)
}

// Undo implements command.Undoer.
func (c *On) Undo(ctx context.Context) error {
	if c.stereo == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "restoring stereo", "stereo", c.stereo.Location)
	return c.prev.restore(c.stereo)
}

// Off switches a stereo off. Undo switches it back on.
type Off struct {
	label  string
	stereo *devices.Stereo
}

// NewOff creates a command that switches stereo off.
func NewOff(label string, stereo *devices.Stereo) *Off {
	if label == "" {
		label = defaultLabel("stereo off", stereo)
	}

	return &Off{label: label, stereo: stereo}
}

// Label implements command.Labeller.
func (c *Off) Label() string {
	return c.label
}

// Execute implements command.Command.
func (c *Off) Execute(ctx context.Context) error {
	if c.stereo == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching stereo off", "stereo", c.stereo.Location)
	c.stereo.Off()

	return nil
}

// Undo implements command.Undoer.
func (c *Off) Undo(ctx context.Context) error {
	if c.stereo == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "switching stereo on", "stereo", c.stereo.Location)
	c.stereo.On()

	return nil
}

// SetVolume sets a stereo to a fixed level.
// Undo restores the level the stereo had before the last Execute.
type SetVolume struct {
	label  string
	stereo *devices.Stereo
	level  int
	prev   int
}

// NewSetVolume creates a command that sets the volume of stereo to level.
// The level is checked by the stereo when the command executes.
func NewSetVolume(label string, stereo *devices.Stereo, level int) *SetVolume {
	if label == "" {
		label = defaultLabel("stereo volume", stereo)
	}

	return &SetVolume{label: label, stereo: stereo, level: level}
}

// Label implements command.Labeller.
func (c *SetVolume) Label() string {
	return c.label
}

// Level returns the volume level the command sets.
func (c *SetVolume) Level() int {
	return c.level
}

// Execute implements command.Command.
func (c *SetVolume) Execute(ctx context.Context) error {
	if c.stereo == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "setting stereo volume", "stereo", c.stereo.Location, "level", c.level)

	prev := c.stereo.Volume()
	if err := c.stereo.SetVolume(c.level); err != nil {
		return err
	}

	c.prev = prev

	return nil
}

// Undo implements command.Undoer.
func (c *SetVolume) Undo(ctx context.Context) error {
	if c.stereo == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "restoring stereo volume", "stereo", c.stereo.Location, "level", c.prev)
	return c.stereo.SetVolume(c.prev)
}

func defaultLabel(action string, stereo *devices.Stereo) string {
	if stereo == nil {
		return action
	}

	return action + " " + stereo.Location
}
