// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandregistry

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

// MaxRecursionDepth is the deepest chain of command group references that will be resolved.
const MaxRecursionDepth = 100

var _ commands.CommanderFactory = (*Registry)(nil)

var (
	// ErrUnknownCommandType is returned when a command type is not registered.
	ErrUnknownCommandType = errors.New("unknown command type")
	// ErrDuplicateCommandType is returned when a command type is registered twice.
	ErrDuplicateCommandType = errors.New("command type already registered")
	// ErrCommandCreation is returned when a command cannot be created.
	ErrCommandCreation = errors.New("failed to create command")
	// ErrCommandUnmarshal is returned when a command cannot be unmarshaled.
	ErrCommandUnmarshal = errors.New("failed to unmarshal command definition")
	// ErrMissingCommandType is returned when a command definition has no type.
	ErrMissingCommandType = errors.New("command definition has no type")
	// ErrUnknownCommandGroup is returned when a command group is not defined.
	ErrUnknownCommandGroup = errors.New("unknown command group")
	// ErrCircularDependency is returned when command groups reference each other in a loop.
	ErrCircularDependency = errors.New("circular dependency between command groups")
	// ErrMaxRecursionDepth is returned when command group references nest deeper than MaxRecursionDepth.
	ErrMaxRecursionDepth = errors.New("maximum command group recursion depth exceeded")
)

// RegistrationFunc registers one or more command types with a factory.
// Each command package exports one as Register.
type RegistrationFunc func(commands.CommanderFactory) error

// Registry holds the mapping between command types and their commanders,
// and the named command groups.
type Registry struct {
	commanders map[string]commands.Commander
	groups     map[string][]any
}

// New creates a registry and runs the registration funcs against it.
// It panics if two funcs register the same command type.
func New(fns ...RegistrationFunc) *Registry {
	r := &Registry{
		commanders: make(map[string]commands.Commander),
		groups:     make(map[string][]any),
	}

	for _, fn := range fns {
		if err := fn(r); err != nil {
			panic(err)
		}
	}

	return r
}

// Register registers a new command type with its commander.
func (r *Registry) Register(commandType string, commander commands.Commander) error {
	if _, exists := r.commanders[commandType]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommandType, commandType)
	}

	r.commanders[commandType] = commander

	return nil
}

// Get returns the commander for commandType.
func (r *Registry) Get(commandType string) (commands.Commander, bool) {
	c, ok := r.commanders[commandType]
	return c, ok
}

// Types returns the registered command types in sorted order.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.commanders))
}

// Iter iterates over the registered commanders in command type order.
func (r *Registry) Iter() iter.Seq2[string, commands.Commander] {
	return func(yield func(string, commands.Commander) bool) {
		for _, t := range r.Types() {
			if !yield(t, r.commanders[t]) {
				return
			}
		}
	}
}

// commandType represents a command with its type and raw YAML data.
type commandType struct {
	Type string `yaml:"type"`
}

// CreateCommandFromYAML creates a command from YAML data using the registered commanders.
func (r *Registry) CreateCommandFromYAML(
	ctx context.Context, home *devices.Home, yamlData []byte,
) (command.Command, error) {
	var ct commandType
	if err := yaml.Unmarshal(yamlData, &ct); err != nil {
		return nil, errors.Join(ErrCommandUnmarshal, err)
	}

	if ct.Type == "" {
		return nil, ErrMissingCommandType
	}

	commander, exists := r.commanders[ct.Type]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommandType, ct.Type)
	}

	cmd, err := commander.Create(ctx, r, home, yamlData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCommandCreation, ct.Type, err)
	}

	return cmd, nil
}

// AddCommandGroup defines a named group of command definitions, replacing any group of the same name.
func (r *Registry) AddCommandGroup(name string, definitions []any) {
	r.groups[name] = slices.Clone(definitions)
}

// CommandGroups returns the defined group names in sorted order.
func (r *Registry) CommandGroups() []string {
	return slices.Sorted(maps.Keys(r.groups))
}

// ResolveCommandGroup returns the definitions of the named group.
// Every group reachable from it through `command_group` references is checked
// for existence, cycles and nesting depth.
func (r *Registry) ResolveCommandGroup(name string) ([]any, error) {
	if err := r.checkGroup(name, nil); err != nil {
		return nil, err
	}

	return slices.Clone(r.groups[name]), nil
}

func (r *Registry) checkGroup(name string, path []string) error {
	if len(path) >= MaxRecursionDepth {
		return fmt.Errorf("%w: %d", ErrMaxRecursionDepth, MaxRecursionDepth)
	}

	if i := slices.Index(path, name); i >= 0 {
		return fmt.Errorf("%w: %s", ErrCircularDependency, formatCircularDependencyPath(path[i:]))
	}

	defs, ok := r.groups[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommandGroup, name)
	}

	path = append(path, name)

	for _, def := range defs {
		for _, ref := range groupReferences(def) {
			if err := r.checkGroup(ref, path); err != nil {
				return err
			}
		}
	}

	return nil
}

// groupReferences returns the command groups named by a definition,
// including those named by nested inline commands.
func groupReferences(def any) []string {
	var m map[string]any

	switch t := def.(type) {
	case map[string]any:
		m = t
	case map[any]any:
		m = make(map[string]any, len(t))
		for k, v := range t {
			if ks, ok := k.(string); ok {
				m[ks] = v
			}
		}
	default:
		return nil
	}

	var refs []string

	if s, ok := m["command_group"].(string); ok && s != "" {
		refs = append(refs, s)
	}

	if children, ok := m["commands"].([]any); ok {
		for _, child := range children {
			refs = append(refs, groupReferences(child)...)
		}
	}

	return refs
}

// formatCircularDependencyPath renders a cycle as "a → b → a".
func formatCircularDependencyPath(path []string) string {
	if len(path) == 0 {
		return "unknown path"
	}

	return strings.Join(append(slices.Clone(path), path[0]), " → ")
}
