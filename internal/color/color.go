// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// Code represents an ANSI control code for text formatting.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled = isColorCapable(os.Stdout)

// Painter applies colour codes when enabled, and returns strings unchanged otherwise.
type Painter struct {
	Enabled bool
}

// For returns a Painter for w. Colour is enabled when the environment allows it
// and w is a terminal.
func For(w io.Writer) Painter {
	return Painter{Enabled: isColorCapable(w)}
}

// Paint returns str wrapped in the colour codes followed by a reset.
func (p Painter) Paint(str string, colorCodes ...Code) string {
	return p.paint(str, true, colorCodes)
}

func (p Painter) paint(str string, withReset bool, colorCodes []Code) string {
	if !p.Enabled || len(colorCodes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)

	if withReset {
		sb.WriteString(reset)
	}

	return sb.String()
}

// Colorize returns a string with ANSI color codes applied when stdout supports colour.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	return Painter{Enabled: enabled}.paint(str, true, colorCodes)
}

// ColorizeNoReset returns a string with ANSI color codes applied.
// It does not append the reset code at the end of the string.
func ColorizeNoReset(str string, colorCodes ...Code) string {
	return Painter{Enabled: enabled}.paint(str, false, colorCodes)
}

// Enabled reports whether color output is enabled for stdout.
//
// NO_COLOR disables colour, FORCE_COLOR enables it, otherwise colour is used
// when stdout is a terminal.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides colour detection for stdout.
func SetEnabled(v bool) {
	enabled = v
}

func isColorCapable(w io.Writer) bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
