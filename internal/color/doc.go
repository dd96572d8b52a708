// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI colour codes.
// Colour is disabled by NO_COLOR, forced by FORCE_COLOR, and otherwise used only
// when the destination is a terminal, detected with golang.org/x/term.
package color
