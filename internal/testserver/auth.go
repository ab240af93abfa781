// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-comment-board/internal/app"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errUserExists        = errors.New("user already exists")
	errMissingFields     = errors.New("missing fields")
	errTokenNotIssued    = errors.New("token was not issued or was revoked")
	errUnexpectedSigning = errors.New("unexpected signing method")
)

func requestLogger(r *http.Request) *logger.Logger {
	return logger.FromContext(r.Context())
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var draft models.RegisterDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgMissingFields)
		return
	}

	user, err := b.createAccount(draft.Name, draft.Email, draft.Password)
	switch {
	case errors.Is(err, errMissingFields):
		writeMessage(w, http.StatusBadRequest, app.MsgMissingFields)
		return
	case errors.Is(err, errUserExists):
		writeMessage(w, http.StatusBadRequest, app.MsgUserAlreadyExists)
		return
	case err != nil:
		log.Err(err).Msg("registration failed")
		writeInternalError(w)
		return
	}

	b.respondWithToken(w, r, http.StatusCreated, user)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var draft models.LoginDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgMissingFields)
		return
	}
	if strings.TrimSpace(draft.Email) == "" || draft.Password == "" {
		writeMessage(w, http.StatusBadRequest, app.MsgMissingFields)
		return
	}

	b.mu.Lock()
	acc, ok := b.accounts[normalizeEmail(draft.Email)]
	b.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}

	match, err := b.hasher.Verify(draft.Password, acc.passwordHash)
	if err != nil {
		log.Err(err).Msg("stored password hash is unusable")
		writeInternalError(w)
		return
	}
	if !match {
		writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}

	b.respondWithToken(w, r, http.StatusOK, acc.user)
}

func (b *Backend) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user models.User) {
	token, err := b.issueToken(user.Email)
	if err != nil {
		requestLogger(r).Err(err).Msg("creation of token failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, status, models.AuthResponse{Token: token, User: user})
}

func (b *Backend) createAccount(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, errMissingFields
	}

	hash, err := b.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.accounts[email]; exists {
		return models.User{}, errUserExists
	}

	user := models.User{ID: b.ids.Generate(), Name: name, Email: email}
	b.accounts[email] = account{user: user, passwordHash: hash}
	return user, nil
}

func (b *Backend) issueToken(email string) (string, error) {
	now := b.now()
	id := b.ids.Generate()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        id,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(b.tokenTTL)),
	}).SignedString(b.secret)
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	b.tokens[id] = email
	b.mu.Unlock()

	return signed, nil
}

// parseToken verifies signature, expiry and that the token is still live,
// and returns the e-mail it was issued to.
func (b *Backend) parseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigning
		}
		return b.secret, nil
	}, jwt.WithTimeFunc(b.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	email, ok := b.tokens[claims.ID]
	b.mu.Unlock()
	if !ok {
		return "", errTokenNotIssued
	}
	return email, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
