// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/app"
	"github.com/MKhiriev/go-comment-board/models"
)

const msgCommentReceived = "Comment received"

// commentResponse is the feed item as the backend stores it, keyed by "_id".
type commentResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Backend) listComments(w http.ResponseWriter, r *http.Request) {
	comments := b.Comments()

	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, commentResponse{ID: c.ID, Name: c.Name, Message: c.Message, CreatedAt: c.CreatedAt})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *Backend) submitComment(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var draft models.CommentDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgMissingFields)
		return
	}
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Email) == "" || strings.TrimSpace(draft.Message) == "" {
		writeMessage(w, http.StatusBadRequest, app.MsgMissingFields)
		return
	}

	comment := models.Comment{
		ID:        b.ids.Generate(),
		Name:      draft.Name,
		Message:   draft.Message,
		CreatedAt: b.now().UTC(),
	}

	b.mu.Lock()
	if b.autoApprove {
		b.published = append(b.published, comment)
	} else {
		b.pending = append(b.pending, comment)
	}
	b.mu.Unlock()

	email, _ := userEmailFromContext(r.Context())
	log.Debug().Str("comment_id", comment.ID).Str("user", email).Msg("comment received")

	writeJSON(w, http.StatusCreated, messageResponse{Message: msgCommentReceived})
}
