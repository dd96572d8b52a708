// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runWatch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc, force func()) *sync.WaitGroup {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel, force)
	}()

	return &wg
}

func TestWatch_FirstSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var forced atomic.Bool

	sigCh := make(chan os.Signal, 1)
	wg := runWatch(ctx, sigCh, cancel, func() { forced.Store(true) })

	sigCh <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context should be cancelled after first signal")
	}

	assert.False(t, forced.Load())
	close(sigCh)
	wg.Wait()
}

func TestWatch_SecondSignalForces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	forced := make(chan struct{})
	sigCh := make(chan os.Signal, 2)
	wg := runWatch(ctx, sigCh, cancel, func() { close(forced) })

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	select {
	case <-forced:
	case <-time.After(time.Second):
		t.Fatal("force should be called after second signal")
	}

	wg.Wait()
}

func TestWatch_DifferentSignalsDoNotForce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var forced atomic.Bool

	sigCh := make(chan os.Signal, 2)
	wg := runWatch(ctx, sigCh, cancel, func() { forced.Store(true) })

	sigCh <- os.Interrupt
	sigCh <- os.Kill

	time.Sleep(50 * time.Millisecond)
	assert.False(t, forced.Load())
	assert.Error(t, ctx.Err())

	close(sigCh)
	wg.Wait()
}

func TestWatch_ReturnsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	wg := runWatch(ctx, sigCh, cancel, nil)

	cancel()
	wg.Wait()
}

func TestStart_StopReleases(t *testing.T) {
	ctx, stop := Start(context.Background(), nil)
	assert.NoError(t, ctx.Err())

	stop()
	assert.Error(t, ctx.Err())
}
