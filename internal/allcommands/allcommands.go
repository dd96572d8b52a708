// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package allcommands wires every command package into a registry.
package allcommands

import (
	"github.com/matt-FFFFFF/conductor/internal/commandregistry"
	"github.com/matt-FFFFFF/conductor/internal/commands/lightcommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/macrocommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/mailcommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/noopcommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/printcommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/stereocommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/tvcommand"
)

// Registrations lists the Register func of every command package.
var Registrations = []commandregistry.RegistrationFunc{
	lightcommand.Register,
	macrocommand.Register,
	mailcommand.Register,
	noopcommand.Register,
	printcommand.Register,
	stereocommand.Register,
	tvcommand.Register,
}

// NewRegistry returns a registry with every command type registered.
func NewRegistry() *commandregistry.Registry {
	return commandregistry.New(Registrations...)
}
