// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"context"
	"errors"
	"testing"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFakeCreate = errors.New("fake create failure")

type fakeCommander struct {
	fail    bool
	gotHome *devices.Home
	gotYAML string
	factory commands.CommanderFactory
}

func (f *fakeCommander) Create(
	_ context.Context, factory commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	f.gotHome = home
	f.gotYAML = string(payload)
	f.factory = factory

	if f.fail {
		return nil, errFakeCreate
	}

	return command.NoCommand{}, nil
}

func (f *fakeCommander) Description() string { return "fake" }

func (f *fakeCommander) Example() any { return nil }

func registerFake(c *fakeCommander, types ...string) RegistrationFunc {
	return func(f commands.CommanderFactory) error {
		for _, t := range types {
			if err := f.Register(t, c); err != nil {
				return err
			}
		}

		return nil
	}
}

func TestRegistry_Register(t *testing.T) {
	fake := &fakeCommander{}
	r := New(registerFake(fake, "b", "a"))

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, fake, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, r.Types())

	err := r.Register("a", fake)
	require.ErrorIs(t, err, ErrDuplicateCommandType)
	assert.Contains(t, err.Error(), "a")
}

func TestNew_PanicsOnDuplicate(t *testing.T) {
	fake := &fakeCommander{}

	assert.Panics(t, func() {
		New(registerFake(fake, "a"), registerFake(fake, "a"))
	})
}

func TestRegistry_Iter(t *testing.T) {
	fake := &fakeCommander{}
	r := New(registerFake(fake, "c", "a", "b"))

	var types []string
	for typ := range r.Iter() {
		types = append(types, typ)
	}

	assert.Equal(t, []string{"a", "b", "c"}, types)

	types = nil
	for typ := range r.Iter() {
		types = append(types, typ)
		break
	}

	assert.Equal(t, []string{"a"}, types)
}

func TestRegistry_CreateCommandFromYAML(t *testing.T) {
	ctx := context.Background()
	home := devices.DefaultHome()

	t.Run("dispatches to commander", func(t *testing.T) {
		fake := &fakeCommander{}
		r := New(registerFake(fake, "fake"))

		payload := "type: fake\nname: x\n"
		cmd, err := r.CreateCommandFromYAML(ctx, home, []byte(payload))
		require.NoError(t, err)
		assert.True(t, command.IsNoCommand(cmd))
		assert.Same(t, home, fake.gotHome)
		assert.Equal(t, payload, fake.gotYAML)
		assert.Same(t, r, fake.factory)
	})

	t.Run("unknown type", func(t *testing.T) {
		r := New()
		_, err := r.CreateCommandFromYAML(ctx, home, []byte("type: nope\n"))
		require.ErrorIs(t, err, ErrUnknownCommandType)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("missing type", func(t *testing.T) {
		r := New()
		_, err := r.CreateCommandFromYAML(ctx, home, []byte("name: untyped\n"))
		assert.ErrorIs(t, err, ErrMissingCommandType)
	})

	t.Run("bad yaml", func(t *testing.T) {
		r := New()
		_, err := r.CreateCommandFromYAML(ctx, home, []byte("type: [oops"))
		assert.ErrorIs(t, err, ErrCommandUnmarshal)
	})

	t.Run("commander failure is wrapped", func(t *testing.T) {
		r := New(registerFake(&fakeCommander{fail: true}, "fake"))
		_, err := r.CreateCommandFromYAML(ctx, home, []byte("type: fake\n"))
		require.ErrorIs(t, err, ErrCommandCreation)
		assert.ErrorIs(t, err, errFakeCreate)
	})
}

func TestRegistry_CommandGroups(t *testing.T) {
	r := New()
	defs := []any{map[string]any{"type": "noop"}}

	r.AddCommandGroup("b", defs)
	r.AddCommandGroup("a", defs)
	assert.Equal(t, []string{"a", "b"}, r.CommandGroups())

	got, err := r.ResolveCommandGroup("a")
	require.NoError(t, err)
	assert.Equal(t, defs, got)

	got[0] = "changed"
	again, err := r.ResolveCommandGroup("a")
	require.NoError(t, err)
	assert.Equal(t, defs, again)

	_, err = r.ResolveCommandGroup("missing")
	assert.ErrorIs(t, err, ErrUnknownCommandGroup)
}

func TestRegistry_CircularDependencySentinel(t *testing.T) {
	r := New()
	r.AddCommandGroup("loop", []any{map[string]any{"type": "macro", "command_group": "loop"}})

	_, err := r.ResolveCommandGroup("loop")
	assert.ErrorIs(t, err, ErrCircularDependency)
}
