// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic of the comment board:
// the session owner, login and registration, and the comment feed.
package service

import (
	"context"

	"github.com/MKhiriev/go-comment-board/models"
)

// SessionEvent is published by [SessionService] when the session changes
// outside of a call made by the UI.
type SessionEvent int

const (
	// SessionExpired means a 401 response forced a logout.
	SessionExpired SessionEvent = iota + 1
	// SessionReset means a 401 arrived while no session was held. The
	// client state is reset the same way, without an expiry notice.
	SessionReset
)

func (e SessionEvent) String() string {
	switch e {
	case SessionExpired:
		return "session expired"
	case SessionReset:
		return "session reset"
	default:
		return "unknown session event"
	}
}

// SessionService is the single owner of the client session. Every other
// component reads the session through it; only its methods write the store
// and the in-memory copy, always together.
//
// It also satisfies adapter.Credentials, so the HTTP adapter reads the token
// and reports 401 responses without knowing where the session lives.
type SessionService interface {
	// Bootstrap loads the persisted session at startup. It returns the
	// session and true when one was restored. A corrupt record or an expired
	// JWT is cleared and reported as no session. Other storage failures are
	// returned as errors.
	Bootstrap(ctx context.Context) (models.Session, bool, error)

	// Start persists s and makes it the current session.
	Start(ctx context.Context, s models.Session) error

	// Logout clears the persisted and in-memory session.
	Logout(ctx context.Context) error

	// Current returns the current session and whether one is held.
	Current() (models.Session, bool)

	// State reports ANONYMOUS or AUTHENTICATED.
	State() models.SessionState

	// Token returns the bearer token to attach, or "" when anonymous.
	Token() string

	// Expire clears the session after a 401. It publishes [SessionExpired]
	// when a session was held and [SessionReset] otherwise.
	Expire(ctx context.Context)

	// Events delivers [SessionEvent] values.
	Events() <-chan SessionEvent
}

// AuthService logs the user in and out.
type AuthService interface {
	// Login validates draft, calls the backend and starts the returned
	// session. On failure the session is untouched.
	Login(ctx context.Context, draft models.LoginDraft) (models.Session, error)

	// Register validates draft, creates the account on the backend and starts
	// the returned session.
	Register(ctx context.Context, draft models.RegisterDraft) (models.Session, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error
}

// FeedUpdate is the outcome of a scheduled feed refresh.
type FeedUpdate struct {
	Comments []models.Comment
	Err      error
}

// CommentService submits comments and reads the public feed.
type CommentService interface {
	// List fetches the full feed. Callers keep their previous list when it
	// fails.
	List(ctx context.Context) ([]models.Comment, error)

	// Submit validates draft and posts it. An incomplete draft never reaches
	// the network.
	Submit(ctx context.Context, draft models.CommentDraft) error

	// ScheduleRefresh re-fetches the feed after the configured delay and
	// delivers the result on Updates. A pending refresh is replaced.
	ScheduleRefresh(ctx context.Context)

	// Updates delivers scheduled refresh results. Only the newest unread
	// result is kept.
	Updates() <-chan FeedUpdate

	// Stop cancels a pending refresh and waits for a running one.
	Stop()
}
