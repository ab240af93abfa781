// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/app"
)

// UserMessage turns err into the text shown to the user. The backend message
// is preferred; transport failures get a network notice; anything else gets
// fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrEmptyFields):
		return app.MsgFillAllFields
	case errors.Is(err, ErrInvalidEmail):
		return app.MsgInvalidEmail
	}

	if msg, ok := adapter.BackendMessage(err); ok {
		return msg
	}

	if isNetworkError(err) {
		return app.MsgNetworkUnavailable
	}

	return fallback
}

// isNetworkError reports whether err comes from the transport rather than
// from a backend response.
func isNetworkError(err error) bool {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return false
	}

	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) ||
		errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded)
}
