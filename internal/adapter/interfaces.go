// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// comment board REST backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP. The HTTP implementation ([NewHTTPServerAdapter]) composes two
// middlewares around every request once, at construction:
//
//   - outbound: the current bearer token from [Credentials] is attached as the
//     Authorization header;
//   - inbound: a 401 response triggers [Credentials.Expire] before the error is
//     returned to the caller.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). The backend's "message" is kept in
// [APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-comment-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the comment board backend.
type ServerAdapter interface {
	// Login posts the credentials to POST /api/auth/login and returns the
	// issued token and user. The adapter does not store the token; persisting
	// the session is the caller's job.
	Login(ctx context.Context, draft models.LoginDraft) (models.AuthResponse, error)

	// Register posts the new account to POST /api/auth/register and returns
	// the issued token and user.
	Register(ctx context.Context, draft models.RegisterDraft) (models.AuthResponse, error)

	// ListComments fetches the full ordered feed from GET /api/comments.
	ListComments(ctx context.Context) ([]models.Comment, error)

	// SubmitComment posts the draft to POST /api/comments. Accepted comments
	// may be held for moderation and not appear in the feed right away.
	SubmitComment(ctx context.Context, draft models.CommentDraft) error
}

// Credentials is the session owner seen from the transport. The adapter only
// reads the token and reports rejections; it never writes the session.
type Credentials interface {
	// Token returns the bearer token to attach, or "" when anonymous.
	Token() string

	// Expire is called once for every 401 response, before the error is
	// returned to the caller.
	Expire(ctx context.Context)
}
