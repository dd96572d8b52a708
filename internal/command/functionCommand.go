// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
)

var (
	_ Command = (*FunctionCommand)(nil)
	_ Undoer  = (*UndoableFunctionCommand)(nil)
)

// ErrCommandPanic is the error returned when a function command panics.
// It is constructed with the value that caused the panic.
type ErrCommandPanic struct {
	v any
}

// NewErrCommandPanic creates a new ErrCommandPanic with the given value.
func NewErrCommandPanic(v any) error {
	return &ErrCommandPanic{v: v}
}

// Error implements the error interface for ErrCommandPanic.
func (e *ErrCommandPanic) Error() string {
	prefix := "command panic:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

// Unwrap returns the panic value if it was an error.
func (e *ErrCommandPanic) Unwrap() error {
	if err, ok := e.v.(error); ok {
		return err
	}

	return nil
}

// Func is the signature of the functions wrapped by FunctionCommand.
type Func func(ctx context.Context) error

// FunctionCommand is a command that runs a function.
type FunctionCommand struct {
	label string
	exec  Func
}

// NewFunc creates a FunctionCommand. A nil function executes as a successful no-op.
func NewFunc(label string, exec Func) *FunctionCommand {
	return &FunctionCommand{
		label: label,
		exec:  exec,
	}
}

// Label implements the Labeller interface.
func (f *FunctionCommand) Label() string {
	if f.label == "" {
		return "FunctionCommand"
	}

	return f.label
}

// Execute implements the Command interface for FunctionCommand.
func (f *FunctionCommand) Execute(ctx context.Context) error {
	return callFunc(ctx, f.Label(), "execute", f.exec)
}

// UndoableFunctionCommand is a FunctionCommand with an inverse function.
type UndoableFunctionCommand struct {
	FunctionCommand
	undo Func
}

// NewUndoableFunc creates a command from a pair of functions, the second being the inverse of the first.
func NewUndoableFunc(label string, exec, undo Func) *UndoableFunctionCommand {
	return &UndoableFunctionCommand{
		FunctionCommand: FunctionCommand{
			label: label,
			exec:  exec,
		},
		undo: undo,
	}
}

// Undo implements the Undoer interface for UndoableFunctionCommand.
func (f *UndoableFunctionCommand) Undo(ctx context.Context) error {
	return callFunc(ctx, f.Label(), "undo", f.undo)
}

// callFunc runs fn and converts a panic into an ErrCommandPanic.
func callFunc(ctx context.Context, label, op string, fn Func) (err error) {
	logger := ctxlog.Logger(ctx).
		With("commandType", "functionCommand").
		With("label", label).
		With("operation", op)

	if fn == nil {
		logger.Debug("no function to run, returning success")
		return nil
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		logger.Error("function command panicked", "panic", r)

		err = NewErrCommandPanic(r)
	}()

	return fn(ctx)
}
