// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// Delayed runs a function once after a fixed delay. Scheduling again while a
// run is pending replaces it, so at most one run is waiting at any time.
type Delayed struct {
	delay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDelayed creates an idle runner. A non-positive delay runs the function
// right away on its own goroutine.
func NewDelayed(delay time.Duration) *Delayed {
	return &Delayed{delay: delay}
}

// Delay returns the configured delay.
func (d *Delayed) Delay() time.Duration {
	return d.delay
}

// Schedule cancels any pending run and arranges for fn to be called after
// the delay. fn receives a context that is cancelled by Stop, by a later
// Schedule, or by ctx itself.
func (d *Delayed) Schedule(ctx context.Context, fn func(ctx context.Context)) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	jobCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer cancel()

		if d.delay > 0 {
			t := time.NewTimer(d.delay)
			defer t.Stop()

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}

		if jobCtx.Err() != nil {
			return
		}
		fn(jobCtx)
	}()
}

// Stop implements [Worker]. It cancels the pending run, if any, and waits
// for a run already in progress to return.
func (d *Delayed) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
}
