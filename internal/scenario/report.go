// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/conductor/internal/color"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

// ErrWriteReport is returned when a report cannot be written.
var ErrWriteReport = errors.New("failed to write report")

// Status is the outcome of a step.
type Status string

// Step statuses.
const (
	StatusOK      Status = "ok"
	StatusNoop    Status = "noop"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Index  int      `yaml:"index"`
	Action Action   `yaml:"action"`
	Label  string   `yaml:"label,omitempty"`
	Status Status   `yaml:"status"`
	Error  string   `yaml:"error,omitempty"`
	Events []string `yaml:"events,omitempty"`
}

// Report is the outcome of a scenario run.
type Report struct {
	Scenario string                `yaml:"scenario"`
	Steps    []StepResult          `yaml:"steps"`
	Devices  []devices.DeviceState `yaml:"devices"`
	// Pending lists the commands still queued when the run ended.
	Pending []string `yaml:"pending,omitempty"`
	// Undo names the command the invoker could still undo.
	Undo string `yaml:"undo,omitempty"`
}

// Failed reports whether any step failed or was skipped.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StatusError || s.Status == StatusSkipped {
			return true
		}
	}

	return false
}

// Count returns the number of steps with the given status.
func (r *Report) Count(status Status) int {
	n := 0

	for _, s := range r.Steps {
		if s.Status == status {
			n++
		}
	}

	return n
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	if err := yaml.NewEncoder(w).Encode(r); err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}

// WriteText writes a human readable report. Colour is used when w is a terminal.
func (r *Report) WriteText(w io.Writer) error {
	p := color.For(w)
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%s %s\n", p.Paint("Scenario:", color.Bold), r.Scenario)

	for _, s := range r.Steps {
		fmt.Fprintf(sb, "  %3d. %-8s %-8s %s\n",
			s.Index, s.Action, p.Paint(string(s.Status), statusColour(s.Status)), s.Label)

		for _, ev := range s.Events {
			fmt.Fprintf(sb, "         %s\n", p.Paint(ev, color.Faint))
		}

		if s.Error != "" {
			fmt.Fprintf(sb, "         %s\n", p.Paint(s.Error, color.FgRed))
		}
	}

	sb.WriteString(p.Paint("Devices:", color.Bold) + "\n")

	for _, d := range r.Devices {
		fmt.Fprintf(sb, "  %-16s %-8s %s\n", d.Name, d.Kind, d.State)
	}

	if len(r.Pending) > 0 {
		fmt.Fprintf(sb, "%s %s\n", p.Paint("Pending:", color.Bold), strings.Join(r.Pending, ", "))
	}

	if r.Undo != "" {
		fmt.Fprintf(sb, "%s %s\n", p.Paint("Undo:", color.Bold), r.Undo)
	}

	fmt.Fprintf(sb, "%d ok, %d noop, %d error, %d skipped\n",
		r.Count(StatusOK), r.Count(StatusNoop), r.Count(StatusError), r.Count(StatusSkipped))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}

func statusColour(s Status) color.Code {
	switch s {
	case StatusOK:
		return color.FgGreen
	case StatusNoop:
		return color.FgCyan
	case StatusError:
		return color.FgRed
	default:
		return color.FgYellow
	}
}
