// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx backend response. It wraps one of the sentinel errors
// above and keeps the backend-provided message for display.
type APIError struct {
	StatusCode int
	// Message is the "message" field of the JSON error body, if any.
	Message string
	// Body is the raw trimmed response body, for logs.
	Body string

	kind error
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, detail)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// BackendMessage returns the backend-provided message carried by err, if any.
func BackendMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
