// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated identity and bearer credential held by the
// client. It is persisted as a single record: token and user are always
// written and cleared together.
type Session struct {
	// Token is the opaque bearer credential issued by the backend.
	// It is attached to outgoing requests byte-for-byte.
	Token string `json:"token"`

	// User is the identity the token was issued for.
	User User `json:"user"`

	// CreatedAt is the local time the session was stored.
	CreatedAt time.Time `json:"-"`
}

// IsZero reports whether s carries no credential.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// SessionState is the client's authentication state.
type SessionState int

const (
	// Anonymous means no credential is held.
	Anonymous SessionState = iota
	// Authenticated means a session record is held and attached to requests.
	Authenticated
)

func (s SessionState) String() string {
	switch s {
	case Authenticated:
		return "AUTHENTICATED"
	default:
		return "ANONYMOUS"
	}
}
