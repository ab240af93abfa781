// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/validators"
	"github.com/MKhiriev/go-comment-board/internal/workers"
)

// ClientServices groups the services used by the TUI.
type ClientServices struct {
	SessionService SessionService
	AuthService    AuthService
	CommentService CommentService

	// Jobs holds the background workers to stop on shutdown.
	Jobs *workers.Workers
}

// NewClientServices wires the services on top of an existing session owner.
// The session service is created first because the adapter needs it as its
// credentials.
func NewClientServices(
	sessions SessionService,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewDraftValidator()
	refresher := workers.NewDelayed(cfg.Workers.RefreshDelay)

	comments := NewCommentService(serverAdapter, validator, refresher, cfg.Adapter.FetchRetries, logger)

	return &ClientServices{
		SessionService: sessions,
		AuthService:    NewAuthService(sessions, serverAdapter, validator, logger),
		CommentService: comments,
		Jobs:           workers.New(comments),
	}
}
