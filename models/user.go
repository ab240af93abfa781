// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity returned by the backend on login or register.
// The client treats it as read-only and persists it together with the token.
type User struct {
	// ID is the backend identifier of the account. Optional in responses.
	ID string `json:"id,omitempty"`

	// Name is the display name. It pre-fills the comment draft.
	Name string `json:"name"`

	// Email is the account e-mail. It pre-fills the comment draft.
	Email string `json:"email"`
}
