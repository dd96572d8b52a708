// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker provides a way to listen for OS signals and handle them gracefully.
// By default it listens for os.Interrupt, syscall.SIGINT, syscall.SIGTERM, and syscall.SIGQUIT signals.
//
// Commands always run to completion, so the first signal only cancels the context,
// which stops a run before its next step. A second signal of the same type forces an exit.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a new signal broker that listens for OS signals that should terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Start creates a broker and watches it in a goroutine.
// The returned context is cancelled on the first signal, force is called on the second.
// Call the returned stop func to release the broker once the work is done.
func Start(ctx context.Context, force func()) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	sigCh := New(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		Watch(ctx, sigCh, cancel, force)
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		close(sigCh)
		cancel()
		<-done
	}
}
