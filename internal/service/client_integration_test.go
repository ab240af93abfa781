// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/app"
	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/internal/testserver"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientUnderTest struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
}

// startClient wires the real client stack (sqlite storage, session owner,
// resty adapter, services) the same way the client binary does.
func startClient(t *testing.T, cfg *config.ClientConfig) *clientUnderTest {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	storages, err := store.NewClientStorages(cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	sessions := service.NewSessionService(storages.SessionRepository, log)
	_, _, err = sessions.Bootstrap(ctx)
	require.NoError(t, err)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sessions, log)
	require.NoError(t, err)

	services := service.NewClientServices(sessions, serverAdapter, cfg, log)
	t.Cleanup(services.Jobs.Stop)

	return &clientUnderTest{cfg: cfg, storages: storages, services: services}
}

func newClientConfig(t *testing.T, backendURL string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{
			HTTPAddress:    backendURL,
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.ClientStorage{
			DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.db")},
		},
		Workers: config.ClientWorkers{RefreshDelay: 20 * time.Millisecond},
	}
}

func TestIntegration_RegisterPersistsAndRestores(t *testing.T) {
	backend, srv := testserver.Start(t, testserver.WithAutoApprove())
	cfg := newClientConfig(t, srv.URL)
	ctx := context.Background()

	first := startClient(t, cfg)
	session, err := first.services.AuthService.Register(ctx, models.RegisterDraft{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, first.storages.Close())

	// a second process over the same database starts authenticated
	second := startClient(t, cfg)
	restored, ok := second.services.SessionService.Current()
	require.True(t, ok)
	assert.Equal(t, session.Token, restored.Token)
	assert.Equal(t, models.User{ID: session.User.ID, Name: "A", Email: "a@x.com"}, restored.User)

	_, err = second.services.CommentService.List(ctx)
	require.NoError(t, err)

	reqs := backend.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, utils.BearerHeader(session.Token), last.Authorization)
	assert.NotEmpty(t, last.RequestID)
}

func TestIntegration_AnonymousRequestsCarryNoToken(t *testing.T) {
	backend, srv := testserver.Start(t)
	c := startClient(t, newClientConfig(t, srv.URL))

	_, err := c.services.CommentService.List(context.Background())
	require.NoError(t, err)

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].Authorization)
}

func TestIntegration_UnauthorizedMidSessionLogsOut(t *testing.T) {
	backend, srv := testserver.Start(t)
	_, err := backend.AddUser("A", "a@x.com", "secret")
	require.NoError(t, err)

	c := startClient(t, newClientConfig(t, srv.URL))
	ctx := context.Background()

	_, err = c.services.AuthService.Login(ctx, models.LoginDraft{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, models.Authenticated, c.services.SessionService.State())

	backend.RevokeTokens()

	err = c.services.CommentService.Submit(ctx, models.CommentDraft{Name: "A", Email: "a@x.com", Message: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, app.MsgTokenIsNotValid, service.UserMessage(err, app.MsgSubmitCommentFailed))

	assert.Equal(t, models.Anonymous, c.services.SessionService.State())
	assert.Empty(t, c.services.SessionService.Token())

	_, err = c.storages.SessionRepository.Load(ctx)
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound, "stored session is cleared")

	select {
	case ev := <-c.services.SessionService.Events():
		assert.Equal(t, service.SessionExpired, ev)
	case <-time.After(time.Second):
		t.Fatal("session expired event not published")
	}

	// the next request goes out anonymously
	_, err = c.services.CommentService.List(ctx)
	require.NoError(t, err)
	reqs := backend.Requests()
	assert.Empty(t, reqs[len(reqs)-1].Authorization)
}

func TestIntegration_WrongPasswordKeepsAnonymous(t *testing.T) {
	backend, srv := testserver.Start(t)
	_, err := backend.AddUser("A", "a@x.com", "secret")
	require.NoError(t, err)

	c := startClient(t, newClientConfig(t, srv.URL))

	_, err = c.services.AuthService.Login(context.Background(), models.LoginDraft{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, app.MsgInvalidCredentials, service.UserMessage(err, app.MsgLoginFailed))
	assert.Equal(t, models.Anonymous, c.services.SessionService.State())

	// the client still resets, but nothing had expired
	require.Len(t, c.services.SessionService.Events(), 1)
	assert.Equal(t, service.SessionReset, <-c.services.SessionService.Events())
}

func TestIntegration_SubmitThenDelayedRefresh(t *testing.T) {
	_, srv := testserver.Start(t, testserver.WithAutoApprove())
	c := startClient(t, newClientConfig(t, srv.URL))
	ctx := context.Background()

	require.NoError(t, c.services.CommentService.Submit(ctx, models.CommentDraft{Name: "Guest", Email: "g@x.com", Message: "hello"}))
	c.services.CommentService.ScheduleRefresh(ctx)

	select {
	case u := <-c.services.CommentService.Updates():
		require.NoError(t, u.Err)
		require.Len(t, u.Comments, 1)
		assert.Equal(t, "hello", u.Comments[0].Message)
		assert.NotEmpty(t, u.Comments[0].ID, "_id is decoded")
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not deliver")
	}
}

func TestIntegration_FeedRetriesServerErrors(t *testing.T) {
	backend, srv := testserver.Start(t)
	backend.Publish(models.Comment{Name: "A", Message: "first"})

	cfg := newClientConfig(t, srv.URL)
	cfg.Adapter.FetchRetries = 2
	c := startClient(t, cfg)

	backend.FailNext(1, http.StatusBadGateway)

	got, err := c.services.CommentService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Len(t, backend.Requests(), 2)
}

func TestIntegration_NetworkDown(t *testing.T) {
	_, srv := testserver.Start(t)
	c := startClient(t, newClientConfig(t, srv.URL))
	srv.Close()

	_, err := c.services.CommentService.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, app.MsgNetworkUnavailable, service.UserMessage(err, app.MsgLoadCommentsFailed))
}
