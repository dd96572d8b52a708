// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is a small program that drives a remote control through the library API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands/lightcommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/stereocommand"
	"github.com/matt-FFFFFF/conductor/internal/commands/tvcommand"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
	"github.com/matt-FFFFFF/conductor/internal/invoker"
	"github.com/matt-FFFFFF/conductor/internal/progress"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)
	ctxlog.LevelVar.Set(slog.LevelDebug)

	lounge := devices.NewLight("lounge")
	tv := devices.NewTV("lounge")
	stereo := devices.NewStereo("lounge")

	reporter := progress.NewChannelReporter(ctx, 16) //nolint:mnd
	reporter.Listen(progress.ListenerFunc(func(ev progress.Event) {
		fmt.Printf("  event: %s %s %s\n", ev.Source, ev.Type, ev.Label)
	}))

	remote := invoker.NewRemote(3, invoker.WithReporter(reporter)) //nolint:mnd

	party := command.NewMacro("party",
		lightcommand.NewOff("", lounge),
		stereocommand.NewOn("", stereo),
	)

	must(remote.SetSlot(0, lightcommand.NewOn("", lounge), lightcommand.NewOff("", lounge)))
	must(remote.SetSlot(1, tvcommand.NewOn("", tv), tvcommand.NewOff("", tv)))
	must(remote.SetSlot(2, party, stereocommand.NewOff("", stereo)))

	fmt.Print(remote)

	must(remote.PressOn(ctx, 0))
	must(remote.PressOn(ctx, 1))

	_, err := remote.PressUndo(ctx)
	must(err)

	must(remote.PressOn(ctx, 2))

	// Macros cannot be undone, so this is a no-op.
	_, err = remote.PressUndo(ctx)
	must(err)

	reporter.Close()

	fmt.Println()
	fmt.Print(remote)

	for _, d := range []devices.Device{lounge, tv, stereo} {
		fmt.Printf("%-8s %s\n", d.Kind(), d.State())
	}
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
