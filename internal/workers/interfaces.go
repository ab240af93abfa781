// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the client process.
// It defines the Worker interface, a Workers aggregate that stops a group of
// jobs together on shutdown, and [Delayed], a cancellable one-shot runner.
package workers

// Worker is the interface that must be implemented by any background job
// owned by the client process.
//
// Stop cancels pending work and blocks until running work has returned.
// It must be safe to call when nothing is running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Stop() {
//	    w.cancel()
//	}
type Worker interface {
	Stop()
}
