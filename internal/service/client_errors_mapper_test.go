// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	const fallback = "Something failed"

	dialErr := &url.Error{Op: "Post", URL: "http://localhost:5000/api/comments", Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "empty fields", err: fmt.Errorf("%w: name", ErrEmptyFields), want: app.MsgFillAllFields},
		{name: "invalid email", err: ErrInvalidEmail, want: app.MsgInvalidEmail},
		{
			name: "backend message",
			err:  fmt.Errorf("%w: %w", ErrLoginOnServer, adapter.NewAPIError(http.StatusUnauthorized, "Invalid credentials")),
			want: "Invalid credentials",
		},
		{
			name: "backend error without message",
			err:  adapter.NewAPIError(http.StatusInternalServerError, ""),
			want: fallback,
		},
		{name: "transport error", err: fmt.Errorf("login request: %w", dialErr), want: app.MsgNetworkUnavailable},
		{name: "timeout", err: fmt.Errorf("x: %w", context.DeadlineExceeded), want: app.MsgNetworkUnavailable},
		{name: "unexpected", err: errors.New("decode login response: unexpected EOF"), want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, fallback))
		})
	}
}

func TestMapValidationError(t *testing.T) {
	assert.NoError(t, mapValidationError(nil))

	other := errors.New("other")
	assert.Same(t, other, mapValidationError(other))
}
