// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lightcommand

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/matt-FFFFFF/conductor/internal/invoker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOn_RoundTrip(t *testing.T) {
	ctx := context.Background()
	light := devices.NewLight("kitchen")
	cmd := NewOn("", light)

	assert.Equal(t, "light on kitchen", command.Label(cmd))
	require.NoError(t, cmd.Execute(ctx))
	assert.True(t, light.IsOn())
	require.NoError(t, cmd.Undo(ctx))
	assert.False(t, light.IsOn())
}

func TestOff_RoundTrip(t *testing.T) {
	ctx := context.Background()
	light := devices.NewLight("kitchen")
	light.On()
	cmd := NewOff("lights out", light)

	assert.Equal(t, "lights out", command.Label(cmd))
	require.NoError(t, cmd.Execute(ctx))
	assert.False(t, light.IsOn())
	require.NoError(t, cmd.Undo(ctx))
	assert.True(t, light.IsOn())
}

func TestInvoker_LightOnUndo(t *testing.T) {
	ctx := context.Background()
	light := devices.NewLight("lounge")
	inv := invoker.New()

	require.False(t, light.IsOn())

	inv.SetCommand(NewOn("", light))
	require.NoError(t, inv.Trigger(ctx))
	assert.True(t, light.IsOn())

	undone, err := inv.UndoLast(ctx)
	require.NoError(t, err)
	assert.True(t, undone)
	assert.False(t, light.IsOn())
}

func TestCommander_Create(t *testing.T) {
	ctx := context.Background()
	home := devices.NewHome()
	require.NoError(t, home.Add("lounge", devices.NewLight("lounge")))
	require.NoError(t, home.Add("telly", devices.NewTV("telly")))

	t.Run("on", func(t *testing.T) {
		cmd, err := NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: light-on\ndevice: lounge\n"))
		require.NoError(t, err)
		require.IsType(t, &On{}, cmd)
		assert.Equal(t, "light on lounge", command.Label(cmd))
	})

	t.Run("off with name", func(t *testing.T) {
		cmd, err := NewCommander(commandTypeOff).Create(
			ctx, nil, home, []byte("type: light-off\nname: dim\ndevice: lounge\n"),
		)
		require.NoError(t, err)
		require.IsType(t, &Off{}, cmd)
		assert.Equal(t, "dim", command.Label(cmd))
	})

	t.Run("missing device", func(t *testing.T) {
		_, err := NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: light-on\n"))
		assert.ErrorIs(t, err, commands.ErrMissingDevice)
	})

	t.Run("unknown device", func(t *testing.T) {
		_, err := NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: light-on\ndevice: attic\n"))
		assert.ErrorIs(t, err, devices.ErrDeviceNotFound)
	})

	t.Run("wrong device type", func(t *testing.T) {
		_, err := NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: light-on\ndevice: telly\n"))
		assert.ErrorIs(t, err, devices.ErrDeviceType)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: [light-on"))
		assert.ErrorIs(t, err, commands.ErrYamlUnmarshal)
	})
}

func TestCommander_Example(t *testing.T) {
	def, ok := NewCommander(commandTypeOff).Example().(*Definition)
	require.True(t, ok)
	assert.Equal(t, commandTypeOff, def.Type)
	assert.NotEmpty(t, NewCommander(commandTypeOff).Description())
}

func TestNilLight(t *testing.T) {
	ctx := context.Background()
	on := NewOn("", nil)
	off := NewOff("", nil)

	assert.Equal(t, "light on", command.Label(on))
	assert.Equal(t, "light off", command.Label(off))

	for _, c := range []command.Undoer{on, off} {
		require.ErrorIs(t, c.Execute(ctx), command.ErrNilReceiver)
		require.ErrorIs(t, c.Undo(ctx), command.ErrNilReceiver)
	}
}

func TestInvoker_NilLightKeepsHistory(t *testing.T) {
	ctx := context.Background()
	light := devices.NewLight("hall")
	inv := invoker.New()

	inv.SetCommand(NewOn("", light))
	require.NoError(t, inv.Trigger(ctx))

	inv.SetCommand(NewOff("", nil))
	require.ErrorIs(t, inv.Trigger(ctx), command.ErrNilReceiver)
	assert.Equal(t, "light on hall", command.Label(inv.History().Last()))

	undone, err := inv.UndoLast(ctx)
	require.NoError(t, err)
	assert.True(t, undone)
	assert.False(t, light.IsOn())
}

func TestMacro_NilLightChild(t *testing.T) {
	ctx := context.Background()
	light := devices.NewLight("porch")
	macro := command.NewMacro("evening", NewOn("", light), NewOn("", nil))

	err := macro.Execute(ctx)
	require.ErrorIs(t, err, command.ErrNilReceiver)

	var macroErr *command.MacroError
	require.ErrorAs(t, err, &macroErr)
	assert.Equal(t, 1, macroErr.Index)
	assert.Equal(t, "light on", macroErr.Child)
	assert.True(t, light.IsOn())
}
