// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/MKhiriev/go-comment-board/models"
)

const sessionEventsBuffer = 8

type sessionService struct {
	repo   store.SessionRepository
	logger *logger.Logger
	now    func() time.Time

	mu      sync.RWMutex
	current models.Session

	events chan SessionEvent
}

// NewSessionService creates an anonymous session owner backed by repo.
// Call Bootstrap to restore a persisted session.
func NewSessionService(repo store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		events: make(chan SessionEvent, sessionEventsBuffer),
	}
}

// Bootstrap implements [SessionService].
func (s *sessionService) Bootstrap(ctx context.Context) (models.Session, bool, error) {
	stored, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		s.logger.Debug().Str("func", "sessionService.Bootstrap").Msg("no stored session")
		return models.Session{}, false, nil

	case errors.Is(err, store.ErrCorruptSession):
		s.logger.Warn().Err(err).Str("func", "sessionService.Bootstrap").Msg("stored session is corrupt, clearing it")
		if clearErr := s.repo.Clear(ctx); clearErr != nil {
			return models.Session{}, false, fmt.Errorf("%w: %v", ErrClearSession, clearErr)
		}
		return models.Session{}, false, nil

	case err != nil:
		return models.Session{}, false, fmt.Errorf("%w: %v", ErrLoadSession, err)
	}

	if utils.IsTokenExpired(stored.Token, s.now()) {
		s.logger.Info().Str("func", "sessionService.Bootstrap").Msg("stored token has expired, clearing session")
		if clearErr := s.repo.Clear(ctx); clearErr != nil {
			return models.Session{}, false, fmt.Errorf("%w: %v", ErrClearSession, clearErr)
		}
		return models.Session{}, false, nil
	}

	s.mu.Lock()
	s.current = stored
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "sessionService.Bootstrap").
		Str("user", stored.User.Email).
		Msg("session restored")

	return stored, true, nil
}

// Start implements [SessionService]. The record is written before the
// in-memory session changes; a failed write leaves both untouched.
func (s *sessionService) Start(ctx context.Context, session models.Session) error {
	if session.IsZero() {
		return fmt.Errorf("%w: empty token", ErrSaveSession)
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, session); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveSession, err)
	}
	s.current = session

	s.logger.Info().
		Str("func", "sessionService.Start").
		Str("user", session.User.Email).
		Msg("session started")

	return nil
}

// Logout implements [SessionService]. The in-memory session is dropped even
// when clearing the store fails, so no further request carries the token.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = models.Session{}
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrClearSession, err)
	}

	s.logger.Info().Str("func", "sessionService.Logout").Msg("logged out")
	return nil
}

// Expire implements [SessionService] and adapter.Credentials. It runs on the
// response path of the rejected request.
func (s *sessionService) Expire(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := !s.current.IsZero()
	s.current = models.Session{}
	// the rejected request's context may be cancelled right after the response
	err := s.repo.Clear(context.WithoutCancel(ctx))
	s.mu.Unlock()

	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Expire").Msg("failed to clear expired session")
	}

	event := SessionReset
	if wasAuthenticated {
		event = SessionExpired
		s.logger.Info().Str("func", "sessionService.Expire").Msg("session expired by backend")
	}

	select {
	case s.events <- event:
	default:
		s.logger.Warn().
			Str("func", "sessionService.Expire").
			Stringer("event", event).
			Msg("session events buffer is full, event dropped")
	}
}

// Current implements [SessionService].
func (s *sessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, !s.current.IsZero()
}

// State implements [SessionService].
func (s *sessionService) State() models.SessionState {
	if _, ok := s.Current(); ok {
		return models.Authenticated
	}
	return models.Anonymous
}

// Token implements [SessionService] and adapter.Credentials.
func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Events implements [SessionService].
func (s *sessionService) Events() <-chan SessionEvent {
	return s.events
}
