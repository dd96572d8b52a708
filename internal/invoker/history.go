// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invoker

import "github.com/matt-FFFFFF/conductor/internal/command"

// History remembers the most recently triggered command.
// It holds at most one command; recording a new one discards the previous one.
type History struct {
	last command.Command
}

// Record replaces the remembered command.
func (h *History) Record(c command.Command) {
	h.last = c
}

// Last returns the remembered command, or nil when the history is empty.
func (h *History) Last() command.Command {
	return h.last
}

// Clear empties the history.
func (h *History) Clear() {
	h.last = nil
}

// Empty reports whether the history holds no command.
func (h *History) Empty() bool {
	return h.last == nil
}
