// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

// Action is what a step does.
type Action string

// Step actions.
const (
	// ActionSet puts the step command in the invoker slot.
	ActionSet Action = "set"
	// ActionTrigger executes the invoker slot.
	ActionTrigger Action = "trigger"
	// ActionUndo undoes the last triggered command.
	ActionUndo Action = "undo"
	// ActionEnqueue adds the step command to the queue.
	ActionEnqueue Action = "enqueue"
	// ActionProcess executes every queued command in order.
	ActionProcess Action = "process"
	// ActionExecute executes the step command directly.
	ActionExecute Action = "execute"
)

// Actions returns every known action.
func Actions() []Action {
	return []Action{ActionSet, ActionTrigger, ActionUndo, ActionEnqueue, ActionProcess, ActionExecute}
}

// NeedsCommand reports whether the action requires a command.
func (a Action) NeedsCommand() bool {
	switch a {
	case ActionSet, ActionEnqueue, ActionExecute:
		return true
	default:
		return false
	}
}

// Definition represents the root of a scenario file.
type Definition struct {
	Name          string                   `yaml:"name"`
	Description   string                   `yaml:"description,omitempty"`
	Devices       []DeviceDefinition       `yaml:"devices,omitempty"`
	CommandGroups []CommandGroupDefinition `yaml:"command_groups,omitempty"`
	Steps         []StepDefinition         `yaml:"steps"`
}

// DeviceDefinition declares a device in the home.
// Fail makes a printer or mailer return an error with that text.
type DeviceDefinition struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Fail string `yaml:"fail,omitempty"`
}

// CommandGroupDefinition is a named list of command definitions that macros can reference.
type CommandGroupDefinition struct {
	Name     string `yaml:"name"`
	Commands []any  `yaml:"commands"`
}

// StepDefinition is one step of the scenario.
type StepDefinition struct {
	Action  Action `yaml:"action"`
	Command any    `yaml:"command,omitempty"`
}
