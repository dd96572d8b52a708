// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress provides execution events for commands run through an invoker or a queue.
// Reporters receive an Event every time a command is queued, executed, undone, fails,
// or when an operation turns out to be a no-op.
package progress
