// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/invoker"
	"github.com/matt-FFFFFF/conductor/internal/progress"
	"github.com/matt-FFFFFF/conductor/internal/queue"
)

// StepError is returned by Run for the step that stopped the scenario.
type StepError struct {
	Index  int
	Action Action
	Err    error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index, e.Action, e.Err)
}

// Unwrap returns the cause.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Run executes the steps in order against a fresh invoker and queue.
// It stops at the first failing step, or before the next step once ctx is done.
// The report is always returned. The error is a *StepError.
func (s *Scenario) Run(ctx context.Context) (*Report, error) {
	rec := progress.NewRecorder()
	inv := invoker.New(invoker.WithReporter(rec))
	q := queue.New(queue.WithReporter(rec))

	report := &Report{
		Scenario: s.Name,
		Steps:    make([]StepResult, 0, len(s.Steps)),
	}

	var runErr error

	for i, step := range s.Steps {
		res := StepResult{
			Index:  i + 1,
			Action: step.Action,
			Label:  stepLabel(step, inv, q),
		}

		if runErr == nil && ctx.Err() != nil {
			runErr = &StepError{Index: i + 1, Action: step.Action, Err: ctx.Err()}
		}

		if runErr != nil {
			res.Status = StatusSkipped
			report.Steps = append(report.Steps, res)

			continue
		}

		stepCtx := ctxlog.With(ctx, "scenario", s.Name, "step", i+1, "action", string(step.Action))
		before := len(rec.Events())

		status, err := s.runStep(stepCtx, step, inv, q)
		res.Status = status

		for _, ev := range rec.Events()[before:] {
			res.Events = append(res.Events, describeEvent(ev))
		}

		if err != nil {
			res.Error = err.Error()
			runErr = &StepError{Index: i + 1, Action: step.Action, Err: err}

			ctxlog.Error(stepCtx, "step failed", "error", err)
		}

		report.Steps = append(report.Steps, res)
	}

	report.Devices = s.Home.States()
	report.Pending = q.Labels()

	if last := inv.History().Last(); last != nil {
		report.Undo = command.Label(last)
	}

	return report, runErr
}

func (s *Scenario) runStep(ctx context.Context, step Step, inv *invoker.Invoker, q *queue.Queue) (Status, error) {
	switch step.Action {
	case ActionSet:
		inv.SetCommand(step.Command)
		return StatusOK, nil
	case ActionTrigger:
		noop := command.IsNoCommand(inv.Current())
		if err := inv.Trigger(ctx); err != nil {
			return StatusError, err
		}

		if noop {
			return StatusNoop, nil
		}

		return StatusOK, nil
	case ActionUndo:
		undone, err := inv.UndoLast(ctx)
		if err != nil {
			return StatusError, err
		}

		if !undone {
			return StatusNoop, nil
		}

		return StatusOK, nil
	case ActionEnqueue:
		q.Add(ctx, step.Command)
		return StatusOK, nil
	case ActionProcess:
		empty := q.IsEmpty()
		if err := q.Process(ctx); err != nil {
			return StatusError, err
		}

		if empty {
			return StatusNoop, nil
		}

		return StatusOK, nil
	case ActionExecute:
		if err := step.Command.Execute(ctx); err != nil {
			return StatusError, err
		}

		return StatusOK, nil
	default:
		return StatusError, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
}

// stepLabel names what a step acts on, as seen before it runs.
func stepLabel(step Step, inv *invoker.Invoker, q *queue.Queue) string {
	switch step.Action {
	case ActionTrigger:
		return command.Label(inv.Current())
	case ActionUndo:
		if last := inv.History().Last(); last != nil {
			return command.Label(last)
		}

		return ""
	case ActionProcess:
		return strconv.Itoa(q.Len()) + " queued"
	default:
		return command.Label(step.Command)
	}
}

func describeEvent(ev progress.Event) string {
	s := ev.Source + " " + ev.Type.String()
	if ev.Label != "" {
		s += " " + ev.Label
	}

	return s
}
