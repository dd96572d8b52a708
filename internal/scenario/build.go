// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commandregistry"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var (
	// ErrInvalidScenario wraps every problem found while building a scenario.
	ErrInvalidScenario = errors.New("invalid scenario")
	// ErrNoSteps is returned when a scenario has no steps.
	ErrNoSteps = errors.New("scenario has no steps")
	// ErrUnknownAction is returned when a step has an unknown action.
	ErrUnknownAction = errors.New("unknown step action")
	// ErrMissingCommand is returned when a set, enqueue or execute step has no command.
	ErrMissingCommand = errors.New("step requires a command")
	// ErrUnexpectedCommand is returned when a trigger, undo or process step has a command.
	ErrUnexpectedCommand = errors.New("step does not take a command")
	// ErrFailUnsupported is returned when failure injection is set on a device that cannot fail.
	ErrFailUnsupported = errors.New("only printers and mailers support fail")
)

// Scenario is a built scenario, ready to run.
type Scenario struct {
	Name        string
	Description string
	Home        *devices.Home
	Steps       []Step
}

// Step is one built step. Command is nil for trigger, undo and process.
type Step struct {
	Action  Action
	Command command.Command
}

// Build creates the home and the commands of a scenario.
// Command groups are added to reg. Every problem found is returned together.
func Build(ctx context.Context, def *Definition, reg *commandregistry.Registry) (*Scenario, error) {
	var result error

	home, err := buildHome(def.Devices)
	if err != nil {
		result = multierror.Append(result, err)
	}

	for _, g := range def.CommandGroups {
		reg.AddCommandGroup(g.Name, g.Commands)
	}

	for _, g := range def.CommandGroups {
		if _, err := reg.ResolveCommandGroup(g.Name); err != nil {
			result = multierror.Append(result, fmt.Errorf("command group %q: %w", g.Name, err))
		}
	}

	if len(def.Steps) == 0 {
		result = multierror.Append(result, ErrNoSteps)
	}

	s := &Scenario{
		Name:        def.Name,
		Description: def.Description,
		Home:        home,
		Steps:       make([]Step, 0, len(def.Steps)),
	}

	for i, sd := range def.Steps {
		step, err := buildStep(ctx, reg, home, sd)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("step %d (%s): %w", i+1, sd.Action, err))
			continue
		}

		s.Steps = append(s.Steps, step)
	}

	if result != nil {
		return nil, errors.Join(ErrInvalidScenario, result)
	}

	ctxlog.Debug(ctx, "scenario built", "scenario", s.Name, "devices", home.Len(), "steps", len(s.Steps))

	return s, nil
}

// buildHome creates the declared devices. With none declared, the default home is used.
func buildHome(defs []DeviceDefinition) (*devices.Home, error) {
	if len(defs) == 0 {
		return devices.DefaultHome(), nil
	}

	var result error

	home := devices.NewHome()

	for i, d := range defs {
		dev, err := newDevice(d)
		if err == nil {
			err = home.Add(d.Name, dev)
		}

		if err != nil {
			result = multierror.Append(result, fmt.Errorf("device %d (%s): %w", i+1, d.Name, err))
		}
	}

	return home, result
}

func newDevice(d DeviceDefinition) (devices.Device, error) {
	dev, err := devices.New(d.Type, d.Name)
	if err != nil {
		return nil, err
	}

	if d.Fail == "" {
		return dev, nil
	}

	failure := errors.New(d.Fail)

	switch t := dev.(type) {
	case *devices.Printer:
		t.Fail = failure
	case *devices.Mailer:
		t.Fail = failure
	default:
		return nil, fmt.Errorf("%w: %s is a %s", ErrFailUnsupported, d.Name, d.Type)
	}

	return dev, nil
}

func buildStep(
	ctx context.Context, reg *commandregistry.Registry, home *devices.Home, sd StepDefinition,
) (Step, error) {
	if !slices.Contains(Actions(), sd.Action) {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownAction, sd.Action)
	}

	step := Step{Action: sd.Action}

	if !sd.Action.NeedsCommand() {
		if sd.Command != nil {
			return Step{}, ErrUnexpectedCommand
		}

		return step, nil
	}

	if sd.Command == nil {
		return Step{}, ErrMissingCommand
	}

	cmdYAML, err := yaml.Marshal(sd.Command)
	if err != nil {
		return Step{}, fmt.Errorf("failed to marshal command: %w", err)
	}

	step.Command, err = reg.CreateCommandFromYAML(ctx, home, cmdYAML)
	if err != nil {
		return Step{}, err
	}

	return step, nil
}
