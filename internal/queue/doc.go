// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package queue provides a FIFO buffer of commands for deferred, synchronous batch execution.
package queue
