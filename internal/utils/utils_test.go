// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "42", ExpiresAt: jwt.NewNumericDate(exp)}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, err := TokenExpiry(signedToken(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_Opaque(t *testing.T) {
	_, err := TokenExpiry("abc")
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = TokenExpiry(s)
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, IsTokenExpired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, IsTokenExpired(signedToken(t, now.Add(time.Minute)), now))
	assert.False(t, IsTokenExpired("opaque-token", now))
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken(BearerHeader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		_, err := ParseBearerToken(bad)
		assert.Error(t, err, bad)
	}
}

func TestRequestIDContext(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithRequestID(context.Background(), "req-1")
	id, ok := GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("http://localhost:5000", 3*time.Second)

	assert.Equal(t, "http://localhost:5000", c.BaseURL)
	assert.Equal(t, "application/json", c.Header.Get("Accept"))
}
