// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commands provides the contract for building concrete commands from their YAML definitions.
// Each command type lives in its own sub-package, binds a receiver from a devices.Home,
// and registers a Commander with a CommanderFactory.
package commands
