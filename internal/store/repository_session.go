// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
)

// sessionRepository is the sqlite-backed implementation of
// [SessionRepository]. The user is stored as JSON next to the token.
type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] on db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Load implements [SessionRepository].
func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	query, args, err := loadSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var (
		token     string
		userData  string
		createdAt int64
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&token, &userData, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("failed to query session")
		return models.Session{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if token == "" {
		return models.Session{}, fmt.Errorf("%w: empty token", ErrCorruptSession)
	}

	var user models.User
	if err = json.Unmarshal([]byte(userData), &user); err != nil {
		return models.Session{}, fmt.Errorf("%w: decode user: %v", ErrCorruptSession, err)
	}

	return models.Session{
		Token:     token,
		User:      user,
		CreatedAt: time.UnixMilli(createdAt),
	}, nil
}

// Save implements [SessionRepository].
func (r *sessionRepository) Save(ctx context.Context, s models.Session) error {
	userData, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	query, args, err := saveSessionQuery(s.Token, string(userData), createdAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// Clear implements [SessionRepository].
func (r *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := clearSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
