// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCredentials records how often the adapter asked for the token and
// reported a rejection.
type fakeCredentials struct {
	mu      sync.Mutex
	token   string
	expired int
}

func (f *fakeCredentials) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeCredentials) Expire(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expired++
	f.token = ""
}

func (f *fakeCredentials) expireCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expired
}

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, creds Credentials) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, creds, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Errors(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:5000"}, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, &fakeCredentials{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: " http://127.0.0.1:5000 ", want: "http://127.0.0.1:5000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body models.LoginDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.LoginDraft{Email: "a@x.com", Password: "pw"}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"token": "abc",
			"user":  map[string]any{"name": "A", "email": "a@x.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	got, err := a.Login(context.Background(), models.LoginDraft{Email: "a@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, models.User{Name: "A", Email: "a@x.com"}, got.User)
}

// TestLogin_WrongPassword verifies that the backend message survives the
// mapping and that the 401 is reported to the credentials exactly once.
func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	creds := &fakeCredentials{}
	a := newTestAdapter(t, srv.URL, creds)
	_, err := a.Login(context.Background(), models.LoginDraft{Email: "a@x.com", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	msg, ok := BackendMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Invalid credentials", msg)
	assert.Equal(t, 1, creds.expireCount())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"user": map[string]any{"name": "A"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	_, err := a.Login(context.Background(), models.LoginDraft{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var body models.RegisterDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A", body.Name)

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"token": "t-1",
			"user":  map[string]any{"id": "u1", "name": "A", "email": "a@x.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	got, err := a.Register(context.Background(), models.RegisterDraft{Name: "A", Email: "a@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "t-1", got.Token)
	assert.Equal(t, "u1", got.User.ID)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"message": "User already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	_, err := a.Register(context.Background(), models.RegisterDraft{Name: "A", Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrConflict)
	msg, _ := BackendMessage(err)
	assert.Equal(t, "User already exists", msg)
}

// ── Comments ─────────────────────────────────────────────────────────────────

func TestListComments_Success(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/comments", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"_id": "m1", "name": "A", "message": "first", "createdAt": created},
			{"id": "m2", "name": "B", "message": "second", "createdAt": created},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	got, err := a.ListComments(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m2", got[1].ID)
	assert.Equal(t, "second", got[1].Message)
	assert.True(t, created.Equal(got[0].CreatedAt))
}

func TestListComments_NullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	got, err := a.ListComments(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListComments_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	_, err := a.ListComments(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	_, hasMsg := BackendMessage(err)
	assert.False(t, hasMsg)
	assert.Contains(t, err.Error(), "boom")
}

func TestSubmitComment_SendsExactDraft(t *testing.T) {
	draft := models.CommentDraft{Name: "A", Email: "a@x.com", Message: "hi"}
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body models.CommentDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, draft, body)

		writeJSON(t, w, http.StatusCreated, map[string]string{"message": "Comment submitted"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentials{})
	require.NoError(t, a.SubmitComment(context.Background(), draft))
	assert.Equal(t, 1, calls)
}

func TestSubmitComment_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	creds := &fakeCredentials{token: "abc"}
	a := newTestAdapter(t, srv.URL, creds)
	err := a.SubmitComment(context.Background(), models.CommentDraft{Name: "A", Email: "e", Message: "m"})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Zero(t, creds.expireCount())
}
