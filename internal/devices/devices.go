// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package devices

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Device kinds.
const (
	KindLight   = "light"
	KindTV      = "tv"
	KindStereo  = "stereo"
	KindPrinter = "printer"
	KindMailer  = "mailer"
)

const (
	// MaxVolume is the highest stereo volume.
	MaxVolume = 11
	stateOn   = "on"
	stateOff  = "off"
)

var (
	// ErrUnknownDeviceKind is returned when a device kind is not known.
	ErrUnknownDeviceKind = errors.New("unknown device kind")
	// ErrVolumeOutOfRange is returned when a volume is outside 0..MaxVolume.
	ErrVolumeOutOfRange = errors.New("volume out of range")
)

// Device is implemented by every receiver.
type Device interface {
	// Kind returns the device kind, e.g. "light".
	Kind() string
	// State returns a short human readable description of the device state.
	State() string
}

// Kinds returns the known device kinds in sorted order.
func Kinds() []string {
	return []string{KindLight, KindMailer, KindPrinter, KindStereo, KindTV}
}

// New creates a device of the given kind.
func New(kind, name string) (Device, error) {
	switch kind {
	case KindLight:
		return NewLight(name), nil
	case KindTV:
		return NewTV(name), nil
	case KindStereo:
		return NewStereo(name), nil
	case KindPrinter:
		return NewPrinter(name), nil
	case KindMailer:
		return NewMailer(name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeviceKind, kind)
	}
}

func onOff(on bool) string {
	if on {
		return stateOn
	}

	return stateOff
}

// Light is a simple on/off light.
type Light struct {
	Location string
	on       bool
}

// NewLight creates a light that is off.
func NewLight(location string) *Light {
	return &Light{Location: location}
}

// On switches the light on.
func (l *Light) On() {
	l.on = true
}

// Off switches the light off.
func (l *Light) Off() {
	l.on = false
}

// IsOn reports whether the light is on.
func (l *Light) IsOn() bool {
	return l.on
}

// Kind implements Device.
func (l *Light) Kind() string {
	return KindLight
}

// State implements Device.
func (l *Light) State() string {
	return onOff(l.on)
}

// TV is a television with a channel.
type TV struct {
	Location string
	on       bool
	channel  int
}

// NewTV creates a TV that is off, tuned to channel 1.
func NewTV(location string) *TV {
	return &TV{Location: location, channel: 1}
}

// On switches the TV on.
func (t *TV) On() {
	t.on = true
}

// Off switches the TV off.
func (t *TV) Off() {
	t.on = false
}

// IsOn reports whether the TV is on.
func (t *TV) IsOn() bool {
	return t.on
}

// SetChannel tunes the TV.
func (t *TV) SetChannel(channel int) {
	t.channel = channel
}

// Channel returns the current channel.
func (t *TV) Channel() int {
	return t.channel
}

// Kind implements Device.
func (t *TV) Kind() string {
	return KindTV
}

// State implements Device.
func (t *TV) State() string {
	return onOff(t.on) + ", channel " + strconv.Itoa(t.channel)
}

// Stereo is a stereo with a CD player and a volume.
type Stereo struct {
	Location string
	on       bool
	cd       bool
	volume   int
}

// NewStereo creates a stereo that is off with volume 0.
func NewStereo(location string) *Stereo {
	return &Stereo{Location: location}
}

// On switches the stereo on.
func (s *Stereo) On() {
	s.on = true
}

// Off switches the stereo off.
func (s *Stereo) Off() {
	s.on = false
}

// IsOn reports whether the stereo is on.
func (s *Stereo) IsOn() bool {
	return s.on
}

// SetCD selects the CD input.
func (s *Stereo) SetCD() {
	s.cd = true
}

// SetRadio selects the radio input.
func (s *Stereo) SetRadio() {
	s.cd = false
}

// CD reports whether the CD input is selected.
func (s *Stereo) CD() bool {
	return s.cd
}

// SetVolume sets the volume.
func (s *Stereo) SetVolume(volume int) error {
	if volume < 0 || volume > MaxVolume {
		return fmt.Errorf("%w: %d (0..%d)", ErrVolumeOutOfRange, volume, MaxVolume)
	}

	s.volume = volume

	return nil
}

// Volume returns the current volume.
func (s *Stereo) Volume() int {
	return s.volume
}

// Kind implements Device.
func (s *Stereo) Kind() string {
	return KindStereo
}

// State implements Device.
func (s *Stereo) State() string {
	input := "radio"
	if s.cd {
		input = "cd"
	}

	return onOff(s.on) + ", " + input + ", volume " + strconv.Itoa(s.volume)
}

// Printer keeps every printed document in order.
// When Fail is set, Print returns it instead of printing.
type Printer struct {
	Name    string
	Fail    error
	printed []string
}

// NewPrinter creates a printer with an empty log.
func NewPrinter(name string) *Printer {
	return &Printer{Name: name}
}

// Print prints a document.
func (p *Printer) Print(doc string) error {
	if p.Fail != nil {
		return p.Fail
	}

	p.printed = append(p.printed, doc)

	return nil
}

// Printed returns the printed documents in order.
func (p *Printer) Printed() []string {
	return slices.Clone(p.printed)
}

// Kind implements Device.
func (p *Printer) Kind() string {
	return KindPrinter
}

// State implements Device.
func (p *Printer) State() string {
	if len(p.printed) == 0 {
		return "nothing printed"
	}

	return "printed " + strings.Join(p.printed, ", ")
}

// Message is an email message.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer keeps every sent message in its outbox.
// When Fail is set, Send returns it instead of sending.
type Mailer struct {
	Name   string
	Fail   error
	outbox []Message
}

// NewMailer creates a mailer with an empty outbox.
func NewMailer(name string) *Mailer {
	return &Mailer{Name: name}
}

// Send sends a message.
func (m *Mailer) Send(msg Message) error {
	if m.Fail != nil {
		return m.Fail
	}

	m.outbox = append(m.outbox, msg)

	return nil
}

// Outbox returns the sent messages in order.
func (m *Mailer) Outbox() []Message {
	return slices.Clone(m.outbox)
}

// Kind implements Device.
func (m *Mailer) Kind() string {
	return KindMailer
}

// State implements Device.
func (m *Mailer) State() string {
	return strconv.Itoa(len(m.outbox)) + " sent"
}
