// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var (
	// ErrYamlUnmarshal is returned when a YAML command definition cannot be unmarshaled.
	ErrYamlUnmarshal = errors.New(
		"failed to decode YAML command definition, please check the syntax and structure of your YAML file",
	)
	// ErrMissingDevice is returned when a command that needs a receiver has no device set.
	ErrMissingDevice = errors.New("command definition has no device")
	// ErrNilHome is returned when a command needing a receiver is created without a home.
	ErrNilHome = errors.New("command cannot be created without a home to look up devices in")
)

// ErrCommandCreate is returned when a command cannot be created.
// It includes the command type for easier debugging.
type ErrCommandCreate struct {
	cmdType string
	details string
}

// Error implements the error interface for ErrCommandCreate.
func (e *ErrCommandCreate) Error() string {
	if e.details != "" {
		return fmt.Sprintf("failed to create command %q: %s", e.cmdType, e.details)
	}

	return fmt.Sprintf("failed to create command %q", e.cmdType)
}

// NewErrCommandCreate creates a new ErrCommandCreate error.
func NewErrCommandCreate(cmdType string) error {
	return &ErrCommandCreate{cmdType: cmdType}
}

// NewErrCommandCreateWithDetails creates a new ErrCommandCreate error with additional details.
func NewErrCommandCreateWithDetails(cmdType string, details string) error {
	return &ErrCommandCreate{cmdType: cmdType, details: details}
}

// Decode unmarshals a YAML payload into def.
func Decode(payload []byte, def any) error {
	if err := yaml.Unmarshal(payload, def); err != nil {
		return errors.Join(ErrYamlUnmarshal, err)
	}

	return nil
}

// LookupDevice returns the receiver named by the definition as a T.
func LookupDevice[T devices.Device](home *devices.Home, def *BaseDefinition) (T, error) {
	var zero T

	if home == nil {
		return zero, ErrNilHome
	}

	if def.Device == "" {
		return zero, errors.Join(NewErrCommandCreate(def.Type), ErrMissingDevice)
	}

	d, err := devices.Lookup[T](home, def.Device)
	if err != nil {
		return zero, errors.Join(NewErrCommandCreate(def.Type), err)
	}

	return d, nil
}
