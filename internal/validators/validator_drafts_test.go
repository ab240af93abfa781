// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-comment-board/models"
	"github.com/stretchr/testify/assert"
)

func TestDraftValidator_CommentDraft(t *testing.T) {
	v := NewDraftValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.CommentDraft
		wantErr error
	}{
		{
			name:  "complete",
			draft: models.CommentDraft{Name: "A", Email: "a@x.com", Message: "hi"},
		},
		{
			name:  "guest email is not checked for format",
			draft: models.CommentDraft{Name: "A", Email: "whatever", Message: "hi"},
		},
		{
			name:    "empty name",
			draft:   models.CommentDraft{Email: "a@x.com", Message: "hi"},
			wantErr: ErrEmptyField,
		},
		{
			name:    "empty email",
			draft:   models.CommentDraft{Name: "A", Message: "hi"},
			wantErr: ErrEmptyField,
		},
		{
			name:    "empty message",
			draft:   models.CommentDraft{Name: "A", Email: "a@x.com"},
			wantErr: ErrEmptyField,
		},
		{
			name:    "all empty",
			draft:   models.CommentDraft{},
			wantErr: ErrEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDraftValidator_LoginDraft(t *testing.T) {
	v := NewDraftValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginDraft{Email: "a@x.com", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginDraft{Email: "a@x.com"}), ErrEmptyField)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginDraft{Email: "not-an-email", Password: "p"}), ErrInvalidEmail)

	// empty wins over malformed
	assert.ErrorIs(t, v.Validate(ctx, models.LoginDraft{Email: "not-an-email"}), ErrEmptyField)
}

func TestDraftValidator_RegisterDraft(t *testing.T) {
	v := NewDraftValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.RegisterDraft{Name: "A", Email: "a@x.com", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.RegisterDraft{Email: "a@x.com", Password: "p"}), ErrEmptyField)
	assert.ErrorIs(t, v.Validate(ctx, models.RegisterDraft{Name: "A", Email: "a@", Password: "p"}), ErrInvalidEmail)
}

func TestDraftValidator_Fields(t *testing.T) {
	v := NewDraftValidator()
	ctx := context.Background()

	draft := models.CommentDraft{Message: "hi"}
	assert.NoError(t, v.Validate(ctx, draft, "Message"))
	assert.ErrorIs(t, v.Validate(ctx, draft, "Message", "Name"), ErrEmptyField)
}

func TestDraftValidator_UnsupportedType(t *testing.T) {
	v := NewDraftValidator()

	err := v.Validate(context.Background(), "plain string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
