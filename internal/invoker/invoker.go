// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invoker

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/progress"
)

const source = "invoker"

// Invoker triggers the current command and can undo the last triggered one.
// An Invoker is not safe for concurrent use.
type Invoker struct {
	current  command.Command
	history  History
	reporter progress.Reporter
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithReporter sets the reporter that receives execution events.
func WithReporter(r progress.Reporter) Option {
	return func(i *Invoker) {
		if r != nil {
			i.reporter = r
		}
	}
}

// New creates an Invoker with no command set and an empty history.
func New(opts ...Option) *Invoker {
	i := &Invoker{
		current:  command.NoCommand{},
		reporter: progress.NewNullReporter(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// SetCommand replaces the current command. A nil command unsets it.
// It has no effect on any receiver.
func (i *Invoker) SetCommand(c command.Command) {
	if c == nil {
		c = command.NoCommand{}
	}

	i.current = c
}

// Current returns the current command, which is NoCommand when none is set.
func (i *Invoker) Current() command.Command {
	return i.current
}

// History returns the undo history.
func (i *Invoker) History() *History {
	return &i.history
}

// CanUndo reports whether UndoLast would call Undo on a command.
func (i *Invoker) CanUndo() bool {
	return command.IsUndoable(i.history.Last())
}

// Trigger executes the current command and records it as the last executed command.
// With no command set it is a no-op. When Execute fails the error is returned
// and the history is left unchanged.
func (i *Invoker) Trigger(ctx context.Context) error {
	logger := ctxlog.Logger(ctx).With("component", source)

	if command.IsNoCommand(i.current) {
		logger.Info("no command set")
		i.reporter.Report(progress.NewEvent(source, progress.EventNoop, "", "no command set"))

		return nil
	}

	label := command.Label(i.current)
	logger = logger.With("label", label)

	logger.Debug("triggering command")

	if err := i.current.Execute(ctx); err != nil {
		logger.Debug("command failed", "error", err)
		i.reporter.Report(progress.NewEvent(source, progress.EventFailed, label, "command failed").WithErr(err))

		return err //nolint:wrapcheck
	}

	i.history.Record(i.current)
	i.reporter.Report(progress.NewEvent(source, progress.EventExecuted, label, "command executed"))

	return nil
}

// UndoLast undoes the last triggered command and clears the history.
// It returns true when a command was undone.
// An empty history, or a last command that cannot be undone, is a no-op that returns false.
// A command that is not undoable is dropped from the history.
// When Undo fails the error is returned and the history is kept.
func (i *Invoker) UndoLast(ctx context.Context) (bool, error) {
	logger := ctxlog.Logger(ctx).With("component", source)

	last := i.history.Last()
	if last == nil {
		logger.Info("nothing to undo")
		i.reporter.Report(progress.NewEvent(source, progress.EventNoop, "", "nothing to undo"))

		return false, nil
	}

	label := command.Label(last)
	logger = logger.With("label", label)

	undoer, ok := last.(command.Undoer)
	if !ok {
		logger.Info("last command cannot be undone")
		i.history.Clear()
		i.reporter.Report(progress.NewEvent(source, progress.EventNoop, label, "last command cannot be undone"))

		return false, nil
	}

	if err := undoer.Undo(ctx); err != nil {
		logger.Debug("undo failed", "error", err)
		i.reporter.Report(progress.NewEvent(source, progress.EventFailed, label, "undo failed").WithErr(err))

		return false, err //nolint:wrapcheck
	}

	i.history.Clear()
	i.reporter.Report(progress.NewEvent(source, progress.EventUndone, label, "command undone"))

	return true, nil
}
