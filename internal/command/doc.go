// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines the executable unit of work used throughout conductor.
// A Command wraps a receiver and a fixed set of parameters, and performs the bound action when executed.
// Commands that can be reversed also implement Undoer.
// Commands can be grouped into a MacroCommand, which executes its children in registration order.
// NoCommand is a null object that can stand in wherever no command is bound yet.
package command
