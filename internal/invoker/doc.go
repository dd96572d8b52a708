// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package invoker triggers commands without knowing anything about their receivers.
// An Invoker holds a current command and a single-slot History of the last triggered command,
// which can be undone exactly once. There is no undo stack and no redo.
// Remote builds on Invoker to provide numbered on/off slots that default to the null command.
package invoker
