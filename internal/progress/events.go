// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event represents something that happened to a command.
type Event struct {
	Source    string    // Component that emitted the event (e.g. "invoker", "queue")
	Label     string    // Label of the command, empty for no-op events without a command
	ID        string    // Correlation id, set for queued commands
	Type      EventType // Event type indicating what happened
	Message   string    // Human-readable status message
	Timestamp time.Time // When the event occurred
	Err       error     // Error for EventFailed
}

// EventType represents the type of execution event.
type EventType int

const (
	// EventQueued indicates a command was added to a queue.
	EventQueued EventType = iota
	// EventExecuted indicates a command executed successfully.
	EventExecuted
	// EventUndone indicates a command was undone successfully.
	EventUndone
	// EventFailed indicates that executing or undoing a command returned an error.
	EventFailed
	// EventNoop indicates the operation had nothing to do.
	EventNoop
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventQueued:
		return "queued"
	case EventExecuted:
		return "executed"
	case EventUndone:
		return "undone"
	case EventFailed:
		return "failed"
	case EventNoop:
		return "noop"
	default:
		return "unknown"
	}
}

// NewEvent creates an event stamped with the current time.
func NewEvent(source string, typ EventType, label, message string) Event {
	return Event{
		Source:    source,
		Label:     label,
		Type:      typ,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithErr returns a copy of the event carrying err.
func (e Event) WithErr(err error) Event {
	e.Err = err
	return e
}

// WithID returns a copy of the event carrying the correlation id.
func (e Event) WithID(id string) Event {
	e.ID = id
	return e
}

// Reporter is the interface for sending events.
type Reporter interface {
	// Report sends an event. Implementations should be non-blocking
	// and handle the case where the receiver might not be listening.
	Report(event Event)
	// Close signals that no more events will be sent and cleans up resources.
	Close()
}

// Listener receives events from a ChannelReporter.
type Listener interface {
	// OnEvent is called when an event is received.
	OnEvent(event Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(event Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// NullReporter is a no-op implementation of Reporter.
type NullReporter struct{}

// Report implements Reporter.Report by doing nothing.
func (nr *NullReporter) Report(_ Event) {}

// Close implements Reporter.Close by doing nothing.
func (nr *NullReporter) Close() {}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() Reporter {
	return &NullReporter{}
}
