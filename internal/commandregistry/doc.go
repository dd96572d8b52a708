// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandregistry provides a registry for command types and their commanders.
// It satisfies the commands.CommanderFactory interface and holds the named command groups
// that macros may reference.
package commandregistry
