// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/conductor/internal/color"
	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commandregistry"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/matt-FFFFFF/conductor/internal/invoker"
	"github.com/matt-FFFFFF/conductor/internal/progress"
	"github.com/matt-FFFFFF/conductor/internal/queue"
)

var (
	// ErrUnknownInput is returned for a line that is not a session command.
	ErrUnknownInput = errors.New("unknown input, type help for the list of commands")
	// ErrMissingDefinition is returned when set, enqueue or exec has no command definition.
	ErrMissingDefinition = errors.New("a command definition is required, e.g. {type: light-on, device: light}")
)

const helpText = `set <definition>      put a command in the invoker slot
trigger               execute the invoker slot
undo                  undo the last triggered command
enqueue <definition>  add a command to the queue
process               execute every queued command
exec <definition>     execute a command directly
state                 show the devices
queue                 show the queued commands
help                  show this help
quit | exit           leave

A definition is a YAML flow mapping, e.g. {type: set-volume, device: stereo, level: 4}
`

// Session is an interactive invoker and queue over a home.
// The events of a line are printed, in the order they were reported, before Exec returns.
type Session struct {
	home     *devices.Home
	reg      *commandregistry.Registry
	inv      *invoker.Invoker
	q        *queue.Queue
	out      io.Writer
	paint    color.Painter
	recorder *progress.Recorder
}

// NewSession creates a session writing to out.
func NewSession(reg *commandregistry.Registry, home *devices.Home, out io.Writer) *Session {
	rec := progress.NewRecorder()

	return &Session{
		home:     home,
		reg:      reg,
		inv:      invoker.New(invoker.WithReporter(rec)),
		q:        queue.New(queue.WithReporter(rec)),
		out:      out,
		paint:    color.For(out),
		recorder: rec,
	}
}

// PrintError writes a failed line's error.
func (s *Session) PrintError(err error) {
	_ = s.print(s.paint.Paint("error: ", color.FgRed) + err.Error() + "\n")
}

// Exec runs one input line. It returns true when the session should end.
// Command failures are returned and leave the session usable.
func (s *Session) Exec(ctx context.Context, line string) (bool, error) {
	defer s.flushEvents()

	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.print(helpText)
	case "set":
		c, err := s.create(ctx, arg)
		if err != nil {
			return false, err
		}

		s.inv.SetCommand(c)

		return false, s.print("slot: " + command.Label(c) + "\n")
	case "trigger":
		return false, s.inv.Trigger(ctx) //nolint:wrapcheck
	case "undo":
		_, err := s.inv.UndoLast(ctx)
		return false, err //nolint:wrapcheck
	case "enqueue":
		c, err := s.create(ctx, arg)
		if err != nil {
			return false, err
		}

		s.q.Add(ctx, c)

		return false, nil
	case "process":
		return false, s.q.Process(ctx) //nolint:wrapcheck
	case "exec":
		c, err := s.create(ctx, arg)
		if err != nil {
			return false, err
		}

		return false, c.Execute(ctx) //nolint:wrapcheck
	case "state":
		return false, s.printState()
	case "queue":
		return false, s.print(fmt.Sprintf("queued: [%s]\n", strings.Join(s.q.Labels(), ", ")))
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownInput, verb)
	}
}

func (s *Session) create(ctx context.Context, def string) (command.Command, error) {
	if def == "" {
		return nil, ErrMissingDefinition
	}

	return s.reg.CreateCommandFromYAML(ctx, s.home, []byte(def)) //nolint:wrapcheck
}

func (s *Session) printState() error {
	sb := &strings.Builder{}

	for _, d := range s.home.States() {
		fmt.Fprintf(sb, "%-10s %-8s %s\n", d.Name, d.Kind, d.State)
	}

	if last := s.inv.History().Last(); last != nil {
		fmt.Fprintf(sb, "undo: %s\n", command.Label(last))
	}

	return s.print(sb.String())
}

// flushEvents prints the events recorded since the last flush.
func (s *Session) flushEvents() {
	for _, ev := range s.recorder.Events() {
		s.printEvent(ev)
	}

	s.recorder.Reset()
}

func (s *Session) printEvent(ev progress.Event) {
	code := color.FgGreen

	switch ev.Type {
	case progress.EventFailed:
		code = color.FgRed
	case progress.EventNoop:
		code = color.FgYellow
	}

	line := fmt.Sprintf("%s %s", ev.Source, s.paint.Paint(ev.Type.String(), code))
	if ev.Label != "" {
		line += " " + ev.Label
	}

	if ev.Type == progress.EventNoop {
		line += ": " + ev.Message
	}

	_ = s.print(line + "\n")
}

func (s *Session) print(str string) error {
	_, err := io.WriteString(s.out, str)
	return err //nolint:wrapcheck
}
