// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scenario loads scenario files, builds them into commands bound to a home of devices,
// and runs their steps against an invoker and a queue.
//
// A scenario is written in YAML or HCL. It declares the devices of the home,
// optional named command groups, and an ordered list of steps.
// Each step is one of the actions set, trigger, undo, enqueue, process or execute.
//
// Variables passed on the command line are available as var.<name>.
// In HCL they are ordinary expressions. In YAML a string containing "${" is evaluated as an
// HCL template, so "${var.room}" becomes the value of the room variable.
package scenario
