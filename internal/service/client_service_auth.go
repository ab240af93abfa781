// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/validators"
	"github.com/MKhiriev/go-comment-board/models"
)

type authService struct {
	sessions  SessionService
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewAuthService(sessions SessionService, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

// Login implements [AuthService]. A 401 for wrong credentials reaches the
// session owner too, which is a no-op while anonymous.
func (a *authService) Login(ctx context.Context, draft models.LoginDraft) (models.Session, error) {
	if err := a.validator.Validate(ctx, draft); err != nil {
		return models.Session{}, mapValidationError(err)
	}

	resp, err := a.adapter.Login(ctx, draft)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authService.Login").Msg("login rejected")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return a.start(ctx, resp)
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, draft models.RegisterDraft) (models.Session, error) {
	if err := a.validator.Validate(ctx, draft); err != nil {
		return models.Session{}, mapValidationError(err)
	}

	resp, err := a.adapter.Register(ctx, draft)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authService.Register").Msg("registration rejected")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return a.start(ctx, resp)
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

func (a *authService) start(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	if err := a.sessions.Start(ctx, resp.Session()); err != nil {
		return models.Session{}, err
	}

	session, _ := a.sessions.Current()
	return session, nil
}
