// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
)

// Watch monitors the signal channel and handles signals.
// The first signal cancels the context. A second signal of the same type calls force, if set.
// Watch returns when the channel is closed, after force is called,
// or once the context is done without any signal having been received.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc, force func()) {
	seen := make(map[os.Signal]struct{})
	done := ctx.Done()

	for {
		select {
		case <-done:
			if len(seen) == 0 {
				return
			}

			// Cancelled by us, keep listening for the forcing signal.
			done = nil
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, again := seen[sig]; again {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())

				if force != nil {
					force()
				}

				return
			}

			if len(seen) == 0 {
				ctxlog.Warn(ctx, "watchdog", "detail", "received signal, stopping after the current step", "signal", sig.String())
				cancel()
			}

			seen[sig] = struct{}{}
		}
	}
}
