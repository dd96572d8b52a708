// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package devices contains the receivers that commands act upon, and Home, a named set of them.
// Receivers own their state; nothing but the commands wrapping them should call their methods.
package devices
