// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stereocommand provides commands that control a stereo.
package stereocommand

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var (
	_ commands.Commander = (*Commander)(nil)
	_ commands.Commander = (*VolumeCommander)(nil)
)

var (
	// ErrMissingLevel is returned when a set-volume definition has no level.
	ErrMissingLevel = errors.New("set-volume requires a level")
	// ErrLevelOutOfRange is returned when a set-volume level is outside 0 to devices.MaxVolume.
	ErrLevelOutOfRange = errors.New("set-volume level out of range")
)

// Commander creates stereo on and off commands.
type Commander struct {
	commandType string
}

// NewCommander creates a Commander for commandType, either "stereo-on" or "stereo-off".
func NewCommander(commandType string) *Commander {
	return &Commander{commandType: commandType}
}

// Create implements commands.Commander.
func (c *Commander) Create(
	_ context.Context, _ commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(Definition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	stereo, err := commands.LookupDevice[*devices.Stereo](home, &def.BaseDefinition)
	if err != nil {
		return nil, err
	}

	if c.commandType == commandTypeOff {
		return NewOff(def.Name, stereo), nil
	}

	return NewOn(def.Name, stereo), nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	if c.commandType == commandTypeOff {
		return "Switches a stereo off, undo switches it back on"
	}

	return "Switches a stereo on with the CD selected at full volume, undo restores the previous state"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &Definition{
		BaseDefinition: commands.BaseDefinition{
			Type:   c.commandType,
			Device: "lounge-stereo",
		},
	}
}

// VolumeCommander creates set-volume commands.
type VolumeCommander struct{}

// Create implements commands.Commander.
func (c *VolumeCommander) Create(
	_ context.Context, _ commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(VolumeDefinition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	if def.Level == nil {
		return nil, errors.Join(commands.NewErrCommandCreate(commandTypeVolume), ErrMissingLevel)
	}

	if *def.Level < 0 || *def.Level > devices.MaxVolume {
		return nil, errors.Join(
			commands.NewErrCommandCreate(commandTypeVolume),
			fmt.Errorf("%w: %d (0..%d)", ErrLevelOutOfRange, *def.Level, devices.MaxVolume),
		)
	}

	stereo, err := commands.LookupDevice[*devices.Stereo](home, &def.BaseDefinition)
	if err != nil {
		return nil, err
	}

	return NewSetVolume(def.Name, stereo, *def.Level), nil
}

// Description implements commands.Commander.
func (c *VolumeCommander) Description() string {
	return "Sets the volume of a stereo, undo restores the previous volume"
}

// Example implements commands.Commander.
func (c *VolumeCommander) Example() any {
	level := devices.MaxVolume

	return &VolumeDefinition{
		BaseDefinition: commands.BaseDefinition{
			Type:   commandTypeVolume,
			Device: "lounge-stereo",
		},
		Level: &level,
	}
}
