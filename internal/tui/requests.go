// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "context"

type requestKind int

const (
	requestLogin requestKind = iota
	requestRegister
	requestSubmit
	requestFeed
)

type inflight struct {
	seq    uint64
	cancel context.CancelFunc
}

// requestTracker gives every UI-started request its own cancellable context
// and a sequence number. At most one request per kind is pending; starting a
// new one cancels the previous. It is shared by all copies of the page model
// and only touched from Update.
type requestTracker struct {
	parent  context.Context
	next    uint64
	pending map[requestKind]inflight
}

func newRequestTracker(parent context.Context) *requestTracker {
	return &requestTracker{
		parent:  parent,
		pending: make(map[requestKind]inflight),
	}
}

// begin starts a request of kind and returns its context and number.
func (r *requestTracker) begin(kind requestKind) (context.Context, uint64) {
	if prev, ok := r.pending[kind]; ok {
		prev.cancel()
	}

	r.next++
	ctx, cancel := context.WithCancel(r.parent)
	r.pending[kind] = inflight{seq: r.next, cancel: cancel}
	return ctx, r.next
}

// finish releases the request and reports whether seq is still the pending
// request of kind. A false result means the result is stale.
func (r *requestTracker) finish(kind requestKind, seq uint64) bool {
	cur, ok := r.pending[kind]
	if !ok || cur.seq != seq {
		return false
	}
	cur.cancel()
	delete(r.pending, kind)
	return true
}

// cancelAll aborts every pending request.
func (r *requestTracker) cancelAll() {
	for kind, req := range r.pending {
		req.cancel()
		delete(r.pending, kind)
	}
}

// abort cancels the pending request of kind; its result will be dropped.
func (r *requestTracker) abort(kind requestKind) {
	if cur, ok := r.pending[kind]; ok {
		cur.cancel()
		delete(r.pending, kind)
	}
}
