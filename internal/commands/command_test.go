// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"testing"

	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrCommandCreate(t *testing.T) {
	t.Run("Error method returns formatted string", func(t *testing.T) {
		err := NewErrCommandCreate("light-on")
		assert.Equal(t, `failed to create command "light-on"`, err.Error())
	})

	t.Run("Error method with details", func(t *testing.T) {
		err := NewErrCommandCreateWithDetails("set-volume", "level out of range")
		assert.Equal(t, `failed to create command "set-volume": level out of range`, err.Error())
	})

	t.Run("errors.As", func(t *testing.T) {
		var cmdErr *ErrCommandCreate
		require.ErrorAs(t, NewErrCommandCreate("print"), &cmdErr)
		assert.Equal(t, "print", cmdErr.cmdType)
	})
}

func TestBaseDefinition_LabelOr(t *testing.T) {
	d := &BaseDefinition{}
	assert.Equal(t, "fallback", d.LabelOr("fallback"))

	d.Name = "named"
	assert.Equal(t, "named", d.LabelOr("fallback"))
}

func TestDecode(t *testing.T) {
	var def BaseDefinition

	require.NoError(t, Decode([]byte("type: light-on\ndevice: kitchen\n"), &def))
	assert.Equal(t, "light-on", def.Type)
	assert.Equal(t, "kitchen", def.Device)

	err := Decode([]byte("type: [unterminated"), &def)
	assert.ErrorIs(t, err, ErrYamlUnmarshal)
}

func TestLookupDevice(t *testing.T) {
	home := devices.NewHome()
	require.NoError(t, home.Add("kitchen", devices.NewLight("kitchen")))

	t.Run("found", func(t *testing.T) {
		l, err := LookupDevice[*devices.Light](home, &BaseDefinition{Type: "light-on", Device: "kitchen"})
		require.NoError(t, err)
		assert.Equal(t, "kitchen", l.Location)
	})

	t.Run("missing device name", func(t *testing.T) {
		_, err := LookupDevice[*devices.Light](home, &BaseDefinition{Type: "light-on"})
		assert.ErrorIs(t, err, ErrMissingDevice)

		var cmdErr *ErrCommandCreate
		assert.True(t, errors.As(err, &cmdErr))
	})

	t.Run("wrong kind", func(t *testing.T) {
		_, err := LookupDevice[*devices.TV](home, &BaseDefinition{Type: "tv-on", Device: "kitchen"})
		assert.ErrorIs(t, err, devices.ErrDeviceType)
	})

	t.Run("nil home", func(t *testing.T) {
		_, err := LookupDevice[*devices.Light](nil, &BaseDefinition{Type: "light-on", Device: "kitchen"})
		assert.ErrorIs(t, err, ErrNilHome)
	})
}
