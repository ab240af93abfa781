// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testserver is an in-memory comment board backend serving the REST
// contract the client talks to:
//
//	POST /api/auth/register  {name, email, password} -> {token, user}
//	POST /api/auth/login     {email, password}       -> {token, user}
//	GET  /api/comments                               -> [{_id, name, message, createdAt}]
//	POST /api/comments       {name, email, message}  -> {message}
//
// Errors are JSON bodies of the form {"message": "..."}. A request carrying
// an Authorization header with a token the backend did not issue, or one
// that was revoked, is answered with 401 on every route.
//
// It is used by adapter and integration tests; it is not a production server.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/crypto"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/MKhiriev/go-comment-board/models"
)

const defaultTokenTTL = time.Hour

// Request is what the backend saw of one incoming request.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type account struct {
	user         models.User
	passwordHash string
}

// Backend holds users, comments and issued tokens in memory.
type Backend struct {
	logger *logger.Logger
	hasher crypto.PasswordHasher
	ids    *utils.UUIDGenerator
	now    func() time.Time
	secret []byte

	tokenTTL    time.Duration
	autoApprove bool

	mu        sync.Mutex
	accounts  map[string]account // by e-mail
	tokens    map[string]string  // token id -> e-mail
	published []models.Comment
	pending   []models.Comment
	requests  []Request

	failStatus int
	failLeft   int
}

// Option configures a [Backend].
type Option func(*Backend)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(b *Backend) { b.logger = l }
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(b *Backend) { b.tokenTTL = ttl }
}

// WithAutoApprove publishes submitted comments immediately instead of
// holding them for review.
func WithAutoApprove() Option {
	return func(b *Backend) { b.autoApprove = true }
}

// WithClock replaces time.Now for createdAt stamps and token expiry.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

func New(opts ...Option) *Backend {
	ids := utils.NewUUIDGenerator()
	b := &Backend{
		logger:   logger.Nop(),
		hasher:   crypto.NewPasswordHasher(),
		ids:      ids,
		now:      time.Now,
		secret:   []byte(ids.Generate()),
		tokenTTL: defaultTokenTTL,
		accounts: make(map[string]account),
		tokens:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start serves a new backend on a local httptest server that is closed when
// the test ends.
func Start(t testing.TB, opts ...Option) (*Backend, *httptest.Server) {
	t.Helper()
	b := New(opts...)
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return b, srv
}

// Handler returns the router serving the REST contract.
func (b *Backend) Handler() http.Handler {
	return b.routes()
}

// AddUser registers an account directly, bypassing the HTTP route.
func (b *Backend) AddUser(name, email, password string) (models.User, error) {
	return b.createAccount(name, email, password)
}

// Publish adds comments straight to the public feed.
func (b *Backend) Publish(comments ...models.Comment) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range comments {
		if c.ID == "" {
			c.ID = b.ids.Generate()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = b.now()
		}
		b.published = append(b.published, c)
	}
}

// Approve moves every comment awaiting review to the public feed.
func (b *Backend) Approve() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.published = append(b.published, b.pending...)
	b.pending = nil
}

// Comments returns a copy of the public feed.
func (b *Backend) Comments() []models.Comment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Comment(nil), b.published...)
}

// Pending returns a copy of the comments awaiting review.
func (b *Backend) Pending() []models.Comment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Comment(nil), b.pending...)
}

// RevokeTokens invalidates every issued token, as a backend restart with a
// new signing key would.
func (b *Backend) RevokeTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.tokens)
}

// FailNext answers the next n requests with status and a generic message.
func (b *Backend) FailNext(n, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failLeft = n
	b.failStatus = status
}

// Requests returns what the backend saw so far, oldest first.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}
