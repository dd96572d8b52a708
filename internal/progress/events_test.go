// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestEventType_String(t *testing.T) {
	tests := []struct {
		name      string
		eventType EventType
		expected  string
	}{
		{name: "EventQueued", eventType: EventQueued, expected: "queued"},
		{name: "EventExecuted", eventType: EventExecuted, expected: "executed"},
		{name: "EventUndone", eventType: EventUndone, expected: "undone"},
		{name: "EventFailed", eventType: EventFailed, expected: "failed"},
		{name: "EventNoop", eventType: EventNoop, expected: "noop"},
		{name: "Unknown event type", eventType: EventType(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.eventType.String())
		})
	}
}

func TestNewEvent(t *testing.T) {
	testErr := errors.New("failed")
	before := time.Now()

	e := NewEvent("queue", EventFailed, "print", "command failed").WithErr(testErr).WithID("abc")

	assert.Equal(t, "queue", e.Source)
	assert.Equal(t, "print", e.Label)
	assert.Equal(t, EventFailed, e.Type)
	assert.Equal(t, "abc", e.ID)
	assert.ErrorIs(t, e.Err, testErr)
	assert.False(t, e.Timestamp.Before(before))
}

func TestNullReporter(t *testing.T) {
	reporter := NewNullReporter()
	require.NotNil(t, reporter)

	reporter.Report(NewEvent("invoker", EventExecuted, "test", "test message"))
	reporter.Close()
}

func TestChannelReporter(t *testing.T) {
	defer goleak.VerifyNone(t)

	reporter := NewChannelReporter(context.Background(), 10)
	require.NotNil(t, reporter)

	event := NewEvent("invoker", EventExecuted, "light on", "command executed")
	reporter.Report(event)

	select {
	case received := <-reporter.Events():
		assert.Equal(t, event.Label, received.Label)
		assert.Equal(t, event.Type, received.Type)
		assert.Equal(t, event.Message, received.Message)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Event not received within timeout")
	}

	reporter.Close()

	// A closed reporter drops events instead of panicking.
	reporter.Report(Event{Type: EventExecuted, Message: "Should be dropped"})
	assert.Error(t, reporter.Context().Err())
}

func TestChannelReporter_BufferOverflow(t *testing.T) {
	defer goleak.VerifyNone(t)

	reporter := NewChannelReporter(context.Background(), 1)

	reporter.Report(Event{Type: EventQueued, Message: "Event 1"})
	// This must not block.
	reporter.Report(Event{Type: EventQueued, Message: "Event 2"})

	assert.Len(t, reporter.Events(), 1)
	reporter.Close()
}

type mockListener struct {
	mu     sync.Mutex
	events []Event
}

func (ml *mockListener) OnEvent(event Event) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.events = append(ml.events, event)
}

func TestChannelReporter_Listen(t *testing.T) {
	defer goleak.VerifyNone(t)

	reporter := NewChannelReporter(context.Background(), 10)
	listener := &mockListener{}
	reporter.Listen(listener)

	events := []Event{
		{Type: EventQueued, Message: "Queued"},
		{Type: EventExecuted, Message: "Executed"},
		{Type: EventUndone, Message: "Undone"},
	}

	for _, event := range events {
		reporter.Report(event)
	}

	// Close waits for the listener to drain the buffered events.
	reporter.Close()

	listener.mu.Lock()
	defer listener.mu.Unlock()

	require.Len(t, listener.events, len(events))

	for i, expected := range events {
		assert.Equal(t, expected.Type, listener.events[i].Type)
		assert.Equal(t, expected.Message, listener.events[i].Message)
	}
}

func TestListenerFunc(t *testing.T) {
	var got []EventType

	l := ListenerFunc(func(e Event) { got = append(got, e.Type) })
	l.OnEvent(Event{Type: EventNoop})

	assert.Equal(t, []EventType{EventNoop}, got)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.Report(Event{Type: EventQueued})
	r.Report(Event{Type: EventExecuted})
	r.Close()

	assert.Equal(t, []EventType{EventQueued, EventExecuted}, r.Types())

	events := r.Events()
	events[0].Type = EventFailed
	assert.Equal(t, EventQueued, r.Events()[0].Type, "Events returns a copy")

	r.Reset()
	assert.Empty(t, r.Events())
}
