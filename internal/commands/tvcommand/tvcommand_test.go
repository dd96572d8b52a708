// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tvcommand

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnOff_RoundTrip(t *testing.T) {
	ctx := context.Background()
	tv := devices.NewTV("lounge")
	tv.SetChannel(4)

	on := NewOn("", tv)
	require.NoError(t, on.Execute(ctx))
	assert.Equal(t, "on, channel 4", tv.State())
	require.NoError(t, on.Undo(ctx))
	assert.Equal(t, "off, channel 4", tv.State())

	tv.On()
	off := NewOff("", tv)
	require.NoError(t, off.Execute(ctx))
	assert.False(t, tv.IsOn())
	require.NoError(t, off.Undo(ctx))
	assert.True(t, tv.IsOn())
	assert.Equal(t, 4, tv.Channel())
}

func TestCommander_Create(t *testing.T) {
	ctx := context.Background()
	home := devices.DefaultHome()

	cmd, err := NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: tv-on\ndevice: tv\n"))
	require.NoError(t, err)
	assert.IsType(t, &On{}, cmd)

	cmd, err = NewCommander(commandTypeOff).Create(ctx, nil, home, []byte("type: tv-off\ndevice: tv\n"))
	require.NoError(t, err)
	assert.IsType(t, &Off{}, cmd)

	_, err = NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: tv-on\ndevice: light\n"))
	assert.ErrorIs(t, err, devices.ErrDeviceType)

	_, err = NewCommander(commandTypeOn).Create(ctx, nil, home, []byte("type: tv-on\n"))
	assert.ErrorIs(t, err, commands.ErrMissingDevice)
}

func TestNilTV(t *testing.T) {
	ctx := context.Background()
	on := NewOn("", nil)
	off := NewOff("", nil)

	assert.Equal(t, "tv on", command.Label(on))
	assert.Equal(t, "tv off", command.Label(off))

	for _, c := range []command.Undoer{on, off} {
		require.ErrorIs(t, c.Execute(ctx), command.ErrNilReceiver)
		require.ErrorIs(t, c.Undo(ctx), command.ErrNilReceiver)
	}
}
