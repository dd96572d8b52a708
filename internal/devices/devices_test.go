// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package devices

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			d, err := New(kind, "x")
			require.NoError(t, err)
			assert.Equal(t, kind, d.Kind())
			assert.NotEmpty(t, d.State())
		})
	}

	_, err := New("toaster", "x")
	assert.ErrorIs(t, err, ErrUnknownDeviceKind)
}

func TestLight(t *testing.T) {
	l := NewLight("kitchen")
	assert.False(t, l.IsOn())
	assert.Equal(t, "off", l.State())

	l.On()
	assert.True(t, l.IsOn())
	assert.Equal(t, "on", l.State())

	l.Off()
	assert.False(t, l.IsOn())
}

func TestTV(t *testing.T) {
	tv := NewTV("lounge")
	assert.Equal(t, 1, tv.Channel())

	tv.On()
	tv.SetChannel(4)
	assert.True(t, tv.IsOn())
	assert.Equal(t, "on, channel 4", tv.State())
}

func TestStereo(t *testing.T) {
	s := NewStereo("lounge")

	s.On()
	s.SetCD()
	require.NoError(t, s.SetVolume(MaxVolume))
	assert.Equal(t, "on, cd, volume 11", s.State())

	assert.ErrorIs(t, s.SetVolume(12), ErrVolumeOutOfRange)
	assert.ErrorIs(t, s.SetVolume(-1), ErrVolumeOutOfRange)
	assert.Equal(t, MaxVolume, s.Volume(), "a rejected volume leaves the volume unchanged")

	s.SetRadio()
	s.Off()
	assert.Equal(t, "off, radio, volume 11", s.State())
}

func TestPrinter(t *testing.T) {
	p := NewPrinter("office")
	assert.Equal(t, "nothing printed", p.State())

	require.NoError(t, p.Print("A"))
	require.NoError(t, p.Print("B"))
	assert.Equal(t, []string{"A", "B"}, p.Printed())
	assert.Equal(t, "printed A, B", p.State())

	jam := errors.New("paper jam")
	p.Fail = jam
	assert.ErrorIs(t, p.Print("C"), jam)
	assert.Equal(t, []string{"A", "B"}, p.Printed())
}

func TestMailer(t *testing.T) {
	m := NewMailer("smtp")

	require.NoError(t, m.Send(Message{To: "a@example.com", Subject: "hi"}))
	assert.Len(t, m.Outbox(), 1)
	assert.Equal(t, "1 sent", m.State())

	down := errors.New("smtp down")
	m.Fail = down
	assert.ErrorIs(t, m.Send(Message{}), down)
	assert.Len(t, m.Outbox(), 1)
}

func TestHome(t *testing.T) {
	h := NewHome()

	require.NoError(t, h.Add("lounge", NewLight("lounge")))
	require.NoError(t, h.Add("tv", NewTV("lounge")))

	assert.ErrorIs(t, h.Add("lounge", NewLight("x")), ErrDuplicateDevice)
	assert.ErrorIs(t, h.Add("", NewLight("x")), ErrEmptyDeviceName)

	l, err := Lookup[*Light](h, "lounge")
	require.NoError(t, err)
	assert.Equal(t, "lounge", l.Location)

	_, err = Lookup[*Light](h, "tv")
	assert.ErrorIs(t, err, ErrDeviceType)

	_, err = Lookup[*Light](h, "attic")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	assert.Equal(t, []string{"lounge", "tv"}, h.Names())
	assert.Equal(t, []DeviceState{
		{Name: "lounge", Kind: KindLight, State: "off"},
		{Name: "tv", Kind: KindTV, State: "off, channel 1"},
	}, h.States())
}

func TestDefaultHome(t *testing.T) {
	h := DefaultHome()
	assert.Equal(t, len(Kinds()), h.Len())

	_, err := Lookup[*Stereo](h, KindStereo)
	assert.NoError(t, err)
}
