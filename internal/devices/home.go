// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package devices

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrDeviceNotFound is returned when no device is registered under a name.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceType is returned when a device exists but is of another kind.
	ErrDeviceType = errors.New("device has the wrong kind")
	// ErrDuplicateDevice is returned when a name is registered twice.
	ErrDuplicateDevice = errors.New("duplicate device name")
	// ErrEmptyDeviceName is returned when a device is registered without a name.
	ErrEmptyDeviceName = errors.New("device name is empty")
)

// Home is a named set of devices.
type Home struct {
	devices map[string]Device
}

// NewHome creates an empty Home.
func NewHome() *Home {
	return &Home{devices: make(map[string]Device)}
}

// DefaultHome returns a Home with one device of each kind, named after its kind.
func DefaultHome() *Home {
	h := NewHome()

	for _, kind := range Kinds() {
		d, _ := New(kind, kind)
		_ = h.Add(kind, d)
	}

	return h
}

// Add registers a device under a name.
func (h *Home) Add(name string, d Device) error {
	if name == "" {
		return ErrEmptyDeviceName
	}

	if _, ok := h.devices[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateDevice, name)
	}

	h.devices[name] = d

	return nil
}

// Get returns the device registered under name.
func (h *Home) Get(name string) (Device, error) {
	d, ok := h.devices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, name)
	}

	return d, nil
}

// Names returns the device names in sorted order.
func (h *Home) Names() []string {
	return slices.Sorted(maps.Keys(h.devices))
}

// Len returns the number of devices.
func (h *Home) Len() int {
	return len(h.devices)
}

// Lookup returns the device registered under name as a T.
func Lookup[T Device](h *Home, name string) (T, error) {
	var zero T

	d, err := h.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := d.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is a %s", ErrDeviceType, name, d.Kind())
	}

	return typed, nil
}

// DeviceState is a snapshot of a device.
type DeviceState struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	State string `yaml:"state"`
}

// States returns a snapshot of every device, sorted by name.
func (h *Home) States() []DeviceState {
	names := h.Names()
	states := make([]DeviceState, 0, len(names))

	for _, name := range names {
		d := h.devices[name]
		states = append(states, DeviceState{
			Name:  name,
			Kind:  d.Kind(),
			State: d.State(),
		})
	}

	return states
}
