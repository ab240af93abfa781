// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdLogin(ctx context.Context, seq uint64, auth service.AuthService, draft models.LoginDraft) tea.Cmd {
	return func() tea.Msg {
		session, err := auth.Login(ctx, draft)
		return loginResultMsg{seq: seq, session: session, err: err}
	}
}

func cmdRegister(ctx context.Context, seq uint64, auth service.AuthService, draft models.RegisterDraft) tea.Cmd {
	return func() tea.Msg {
		session, err := auth.Register(ctx, draft)
		return registerResultMsg{seq: seq, session: session, err: err}
	}
}

func cmdLogout(ctx context.Context, auth service.AuthService) tea.Cmd {
	return func() tea.Msg {
		return logoutResultMsg{err: auth.Logout(ctx)}
	}
}

func cmdSubmitComment(ctx context.Context, seq uint64, comments service.CommentService, draft models.CommentDraft) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{seq: seq, err: comments.Submit(ctx, draft)}
	}
}

func cmdLoadFeed(ctx context.Context, seq uint64, comments service.CommentService) tea.Cmd {
	return func() tea.Msg {
		list, err := comments.List(ctx)
		return feedLoadedMsg{seq: seq, comments: list, err: err}
	}
}

// waitForFeedUpdate blocks until the next scheduled refresh result. It is
// re-issued after every delivered update.
func waitForFeedUpdate(ctx context.Context, updates <-chan service.FeedUpdate) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case u := <-updates:
			return feedUpdateMsg{update: u}
		}
	}
}

// waitForSessionEvent blocks until the session owner publishes an event.
func waitForSessionEvent(ctx context.Context, events <-chan service.SessionEvent) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case e := <-events:
			return sessionEventMsg{event: e}
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
