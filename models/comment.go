// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Comment is a published entry of the public comment feed. It is owned by the
// backend; the client only keeps the latest fetched list in memory.
type Comment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnmarshalJSON accepts both "id" and the document-store style "_id" key.
func (c *Comment) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID        string    `json:"id"`
		MongoID   string    `json:"_id"`
		Name      string    `json:"name"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	if c.ID == "" {
		c.ID = raw.MongoID
	}
	c.Name = raw.Name
	c.Message = raw.Message
	c.CreatedAt = raw.CreatedAt
	return nil
}

// CommentDraft is the local, not yet submitted comment form.
type CommentDraft struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// WithIdentity returns a copy of d with name and email taken from u.
// The message is kept.
func (d CommentDraft) WithIdentity(u User) CommentDraft {
	d.Name = u.Name
	d.Email = u.Email
	return d
}
