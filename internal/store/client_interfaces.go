// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides client-side persistence for the comment board
// client. The only durable state is the session record: the bearer token and
// the serialized user, stored as one row so they are always written and
// cleared together.
package store

import (
	"context"

	"github.com/MKhiriev/go-comment-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single session record.
type SessionRepository interface {
	// Load returns the stored session. It returns [ErrLocalSessionNotFound]
	// when nothing is stored and [ErrCorruptSession] when the stored user
	// record cannot be decoded or the token is empty.
	Load(ctx context.Context) (models.Session, error)

	// Save replaces the stored session with s in a single statement.
	Save(ctx context.Context, s models.Session) error

	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
