// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/conductor/internal/allcommands"
	"github.com/matt-FFFFFF/conductor/internal/commandregistry"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildYAML(t *testing.T, data string) (*Scenario, error) {
	t.Helper()

	def, err := Parse("test.yaml", []byte(data), nil)
	require.NoError(t, err)

	return Build(context.Background(), def, allcommands.NewRegistry())
}

func TestBuild(t *testing.T) {
	s, err := buildYAML(t, movieNightYAML)
	require.NoError(t, err)

	assert.Equal(t, "movie night", s.Name)
	assert.Equal(t, []string{"lounge", "tv"}, s.Home.Names())
	require.Len(t, s.Steps, 3)
	assert.Equal(t, ActionSet, s.Steps[0].Action)
	require.NotNil(t, s.Steps[0].Command)
	assert.Nil(t, s.Steps[1].Command)
}

func TestBuildDefaultHome(t *testing.T) {
	s, err := buildYAML(t, `steps:
  - action: execute
    command: {type: light-on, device: light}
`)
	require.NoError(t, err)
	assert.Equal(t, devices.DefaultHome().Names(), s.Home.Names())
}

func TestBuildFailInjection(t *testing.T) {
	s, err := buildYAML(t, `devices:
  - {name: office, type: printer, fail: out of paper}
  - {name: post, type: mailer, fail: offline}
steps:
  - action: trigger
`)
	require.NoError(t, err)

	p, err := devices.Lookup[*devices.Printer](s.Home, "office")
	require.NoError(t, err)
	require.EqualError(t, p.Print("x"), "out of paper")

	m, err := devices.Lookup[*devices.Mailer](s.Home, "post")
	require.NoError(t, err)
	require.EqualError(t, m.Send(devices.Message{To: "a"}), "offline")
}

func TestBuildErrorsAreAggregated(t *testing.T) {
	_, err := buildYAML(t, `devices:
  - {name: lounge, type: lamp}
  - {name: hall, type: light, fail: broken}
  - {name: hall2, type: light}
  - {name: hall2, type: tv}
steps:
  - action: dance
  - action: set
  - action: trigger
    command: {type: noop}
  - action: execute
    command: {type: light-on, device: nowhere}
  - action: enqueue
    command: {type: teleport}
`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidScenario)
	assert.ErrorIs(t, err, devices.ErrUnknownDeviceKind)
	assert.ErrorIs(t, err, ErrFailUnsupported)
	assert.ErrorIs(t, err, devices.ErrDuplicateDevice)
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.ErrorIs(t, err, ErrMissingCommand)
	assert.ErrorIs(t, err, ErrUnexpectedCommand)
	assert.ErrorIs(t, err, devices.ErrDeviceNotFound)
	assert.ErrorIs(t, err, commandregistry.ErrUnknownCommandType)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 8)
	assert.Contains(t, err.Error(), "step 1 (dance)")
	assert.Contains(t, err.Error(), "device 1 (lounge)")
}

func TestBuildNoSteps(t *testing.T) {
	_, err := buildYAML(t, "name: empty\n")
	require.ErrorIs(t, err, ErrNoSteps)
}

func TestBuildCommandGroups(t *testing.T) {
	s, err := buildYAML(t, `devices:
  - {name: lounge, type: light}
command_groups:
  - name: lights
    commands:
      - {type: light-on, device: lounge}
steps:
  - action: execute
    command: {type: macro, command_group: lights}
`)
	require.NoError(t, err)
	require.Len(t, s.Steps, 1)
}

func TestBuildCircularCommandGroups(t *testing.T) {
	_, err := buildYAML(t, `command_groups:
  - name: a
    commands:
      - {type: macro, command_group: b}
  - name: b
    commands:
      - {type: macro, command_group: a}
steps:
  - action: trigger
`)
	require.ErrorIs(t, err, commandregistry.ErrCircularDependency)
	assert.Contains(t, err.Error(), "command group")
}
