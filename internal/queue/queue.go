// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/progress"
)

const source = "queue"

// ProcessError is returned by Process when a command fails.
// The failing command has already been removed from the queue; the commands after it remain queued.
type ProcessError struct {
	ID       string // Correlation id of the failing entry
	Label    string // Label of the failing command
	Position int    // Zero based position of the command within the batch being processed
	Err      error  // Error returned by the command
}

// Error implements the error interface for ProcessError.
func (e *ProcessError) Error() string {
	return fmt.Sprintf("queued command %d (%s) failed: %v", e.Position, e.Label, e.Err)
}

// Unwrap returns the error of the failing command.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

type entry struct {
	id  string
	cmd command.Command
}

// Queue is an unbounded FIFO of commands.
// A Queue is not safe for concurrent use.
type Queue struct {
	entries  []entry
	reporter progress.Reporter
}

// Option configures a Queue.
type Option func(*Queue)

// WithReporter sets the reporter that receives queue events.
func WithReporter(r progress.Reporter) Option {
	return func(q *Queue) {
		if r != nil {
			q.reporter = r
		}
	}
}

// New creates an empty Queue.
func New(opts ...Option) *Queue {
	q := &Queue{
		reporter: progress.NewNullReporter(),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Add appends a command to the tail of the queue and returns its correlation id.
// Nil commands are ignored and return an empty id.
func (q *Queue) Add(ctx context.Context, c command.Command) string {
	if c == nil {
		return ""
	}

	id := uuid.NewString()
	q.entries = append(q.entries, entry{id: id, cmd: c})

	label := command.Label(c)
	ctxlog.Debug(ctx, "command queued", "component", source, "label", label, "id", id, "size", len(q.entries))
	q.reporter.Report(progress.NewEvent(source, progress.EventQueued, label, "command queued").WithID(id))

	return id
}

// Process removes commands from the head of the queue and executes them until the queue is empty.
// It blocks for the whole batch. On the first failure it stops and returns a *ProcessError;
// the failed command is not re-queued and the remaining commands stay in order.
// Processing an empty queue is a no-op.
func (q *Queue) Process(ctx context.Context) error {
	logger := ctxlog.Logger(ctx).With("component", source)

	if len(q.entries) == 0 {
		logger.Info("queue is empty")
		q.reporter.Report(progress.NewEvent(source, progress.EventNoop, "", "queue is empty"))

		return nil
	}

	logger.Debug("processing queue", "size", len(q.entries))

	for pos := 0; len(q.entries) > 0; pos++ {
		e := q.pop()
		label := command.Label(e.cmd)

		if err := e.cmd.Execute(ctx); err != nil {
			logger.Debug("queued command failed", "label", label, "id", e.id, "error", err, "remaining", len(q.entries))
			q.reporter.Report(progress.NewEvent(source, progress.EventFailed, label, "command failed").WithID(e.id).WithErr(err))

			return &ProcessError{
				ID:       e.id,
				Label:    label,
				Position: pos,
				Err:      err,
			}
		}

		q.reporter.Report(progress.NewEvent(source, progress.EventExecuted, label, "command executed").WithID(e.id))
	}

	return nil
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return len(q.entries)
}

// IsEmpty reports whether the queue holds no commands.
func (q *Queue) IsEmpty() bool {
	return len(q.entries) == 0
}

// Labels returns the labels of the queued commands from head to tail.
func (q *Queue) Labels() []string {
	labels := make([]string, len(q.entries))
	for i, e := range q.entries {
		labels[i] = command.Label(e.cmd)
	}

	return labels
}

// pop removes the head entry. The caller must check the queue is not empty.
func (q *Queue) pop() entry {
	e := q.entries[0]
	q.entries[0] = entry{}
	q.entries = q.entries[1:]

	if len(q.entries) == 0 {
		q.entries = nil
	}

	return e
}
