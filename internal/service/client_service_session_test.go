// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/mock"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestSessionSvc creates a sessionService with a mocked repository and a
// fixed clock.
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(ctrl)
	svc := NewSessionService(repo, logger.Nop()).(*sessionService)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func storedSession() models.Session {
	return models.Session{
		Token: "abc",
		User:  models.User{Name: "A", Email: "a@x.com"},
	}
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestSessionService_Bootstrap_Restores(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(storedSession(), nil)

	got, ok, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, models.User{Name: "A", Email: "a@x.com"}, got.User)
	assert.Equal(t, models.Authenticated, svc.State())
	assert.Equal(t, "abc", svc.Token())
}

func TestSessionService_Bootstrap_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, ok, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, models.Anonymous, svc.State())
	assert.Empty(t, svc.Token())
}

func TestSessionService_Bootstrap_CorruptIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Load(ctx).Return(models.Session{}, store.ErrCorruptSession),
		repo.EXPECT().Clear(ctx).Return(nil),
	)

	_, ok, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, models.Anonymous, svc.State())
}

func TestSessionService_Bootstrap_CorruptClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(models.Session{}, store.ErrCorruptSession)
	repo.EXPECT().Clear(ctx).Return(errors.New("disk full"))

	_, ok, err := svc.Bootstrap(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrClearSession)
}

func TestSessionService_Bootstrap_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Load(ctx).Return(models.Session{}, store.ErrExecutingQuery)

	_, ok, err := svc.Bootstrap(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrLoadSession)
	assert.Equal(t, models.Anonymous, svc.State())
}

func TestSessionService_Bootstrap_ExpiredJWTIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	s := storedSession()
	s.Token = signedToken(t, testNow.Add(-time.Minute))

	repo.EXPECT().Load(ctx).Return(s, nil)
	repo.EXPECT().Clear(ctx).Return(nil)

	_, ok, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, svc.Token())
}

func TestSessionService_Bootstrap_ValidJWTIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	s := storedSession()
	s.Token = signedToken(t, testNow.Add(time.Hour))

	repo.EXPECT().Load(ctx).Return(s, nil)

	_, ok, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, s.Token, svc.Token())
}

// ── Start / Logout ───────────────────────────────────────────────────────────

func TestSessionService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
		assert.Equal(t, "abc", s.Token)
		assert.True(t, testNow.Equal(s.CreatedAt))
		return nil
	})

	require.NoError(t, svc.Start(ctx, storedSession()))

	cur, ok := svc.Current()
	assert.True(t, ok)
	assert.Equal(t, "abc", cur.Token)
	assert.Equal(t, models.Authenticated, svc.State())
}

func TestSessionService_Start_SaveFailsLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrExecutingStatement)

	err := svc.Start(ctx, storedSession())
	assert.ErrorIs(t, err, ErrSaveSession)
	assert.Equal(t, models.Anonymous, svc.State())
}

func TestSessionService_Start_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSessionSvc(t, ctrl)

	err := svc.Start(context.Background(), models.Session{User: models.User{Name: "A"}})
	assert.ErrorIs(t, err, ErrSaveSession)
}

func TestSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.current = storedSession()
	repo.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, models.Anonymous, svc.State())
	assert.Empty(t, svc.Events(), "explicit logout publishes nothing")
}

func TestSessionService_Logout_ClearFailsStillDropsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.current = storedSession()
	repo.EXPECT().Clear(ctx).Return(errors.New("locked"))

	assert.ErrorIs(t, svc.Logout(ctx), ErrClearSession)
	assert.Empty(t, svc.Token())
}

// ── Expire ───────────────────────────────────────────────────────────────────

func TestSessionService_Expire_PublishesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.current = storedSession()
	repo.EXPECT().Clear(gomock.Any()).Return(nil).Times(2)

	svc.Expire(ctx)
	// second 401 while already anonymous resets without expiring again
	svc.Expire(ctx)

	assert.Equal(t, models.Anonymous, svc.State())
	require.Len(t, svc.Events(), 2)
	assert.Equal(t, SessionExpired, <-svc.Events())
	assert.Equal(t, SessionReset, <-svc.Events())
}

func TestSessionService_Expire_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	svc.Expire(context.Background())
	require.Len(t, svc.Events(), 1)
	assert.Equal(t, SessionReset, <-svc.Events())
}

func TestSessionService_Expire_CancelledContextStillClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.current = storedSession()
	repo.EXPECT().Clear(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		assert.NoError(t, ctx.Err())
		return nil
	})

	svc.Expire(ctx)
	assert.Equal(t, models.Anonymous, svc.State())
}

func TestSessionService_Expire_ClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)

	svc.current = storedSession()
	repo.EXPECT().Clear(gomock.Any()).Return(errors.New("locked"))

	svc.Expire(context.Background())
	assert.Empty(t, svc.Token())
	assert.Len(t, svc.Events(), 1)
}

func TestSessionEvent_String(t *testing.T) {
	assert.Equal(t, "session expired", SessionExpired.String())
	assert.Equal(t, "session reset", SessionReset.String())
	assert.Equal(t, "unknown session event", SessionEvent(0).String())
}
