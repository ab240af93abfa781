// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/internal/tui"
	"github.com/MKhiriev/go-comment-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilConfig = errors.New("client: nil config")

// App owns the process lifecycle: storage, session bootstrap, services and
// the terminal UI.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	return &App{
		cfg:            cfg,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: opts,
	}, nil
}

// Run restores the stored session before the first request is built, then
// shows the UI until the user quits or ctx is cancelled. Background jobs and
// the database are released on return.
func (a *App) Run(ctx context.Context) error {
	storages, err := store.NewClientStorages(a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing local storage")
		}
	}()

	sessions := service.NewSessionService(storages.SessionRepository, a.logger)
	session, restored, err := sessions.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if restored {
		a.logger.Info().Str("func", "App.Run").Str("user", session.User.Email).Msg("session restored")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, sessions, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(sessions, serverAdapter, a.cfg, a.logger)
	defer services.Jobs.Stop()

	ui, err := tui.New(services, a.buildInfo, a.logger, a.programOptions...)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Str("backend", a.cfg.Adapter.HTTPAddress).Msg("client started")
	return ui.Run(ctx)
}
