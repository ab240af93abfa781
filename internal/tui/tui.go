// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the comment board client: a header
// with the session state, the comment form, the public feed, and the Login
// and Register modals.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilServices = errors.New("tui: nil services")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: opts,
	}, nil
}

// Run shows the page until the user quits or ctx is cancelled. Requests still
// in flight are cancelled on return.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(
		ctx,
		t.services.SessionService,
		t.services.AuthService,
		t.services.CommentService,
		t.buildInfo,
		t.logger,
	)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(appModel); ok {
		result.requests.cancelAll()
	}
	return nil
}
