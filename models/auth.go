// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginDraft is the login form. It is sent as the body of
// POST /api/auth/login and is never persisted.
type LoginDraft struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterDraft is the registration form. It is sent as the body of
// POST /api/auth/register and is never persisted.
type RegisterDraft struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the success body of the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session converts the response into a session record.
func (r AuthResponse) Session() Session {
	return Session{Token: r.Token, User: r.User}
}

// ErrorResponse is the body the backend sends with a non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}
