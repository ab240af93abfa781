// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/models"
)

// Results of request commands carry the sequence number they were started
// with; a result whose number is no longer pending is dropped.

type loginResultMsg struct {
	seq     uint64
	session models.Session
	err     error
}

type registerResultMsg struct {
	seq     uint64
	session models.Session
	err     error
}

type submitResultMsg struct {
	seq uint64
	err error
}

type feedLoadedMsg struct {
	seq      uint64
	comments []models.Comment
	err      error
}

type logoutResultMsg struct {
	err error
}

// feedUpdateMsg is a scheduled refresh result.
type feedUpdateMsg struct {
	update service.FeedUpdate
}

type sessionEventMsg struct {
	event service.SessionEvent
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct {
	id int
}
