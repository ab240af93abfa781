// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathComments = "/api/comments"
)

// ErrMissingToken is returned when a 2xx auth response carries no token.
var ErrMissingToken = errors.New("auth response has no token")

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and registers the request-id, bearer and 401 middlewares backed by
// creds.
//
// Returns an error if creds is nil or adapterCfg.HTTPAddress is empty or
// cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, creds Credentials, log *logger.Logger) (ServerAdapter, error) {
	if creds == nil {
		return nil, errors.New("nil credentials")
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.
		SetLogger(restyLogger{log: log}).
		OnBeforeRequest(requestID(utils.NewUUIDGenerator())).
		OnBeforeRequest(bearerAuth(creds)).
		OnAfterResponse(logResponse(log)).
		OnAfterResponse(expireOnUnauthorized(creds)).
		OnError(logTransportError(log))

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. A non-2xx response is returned as an
// [*APIError]; a 401 additionally expires the current session through the
// response middleware.
func (h *httpServerAdapter) Login(ctx context.Context, draft models.LoginDraft) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(pathLogin)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}

	return decodeAuthResponse(resp, "login")
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, draft models.RegisterDraft) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(pathRegister)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}

	return decodeAuthResponse(resp, "register")
}

// ListComments implements [ServerAdapter]. A null body decodes to an empty
// feed.
func (h *httpServerAdapter) ListComments(ctx context.Context) ([]models.Comment, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(pathComments)
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err = json.Unmarshal(resp.Body(), &comments); err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	return comments, nil
}

// SubmitComment implements [ServerAdapter]. The acknowledgment body is only
// logged; the feed is the source of truth for what got published.
func (h *httpServerAdapter) SubmitComment(ctx context.Context, draft models.CommentDraft) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(pathComments)
	if err != nil {
		return fmt.Errorf("submit comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.SubmitComment").
		RawJSON("ack", jsonOrNull(resp.Body())).
		Msg("comment accepted")

	return nil
}

func decodeAuthResponse(resp *resty.Response, op string) (models.AuthResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrMissingToken)
	}

	return auth, nil
}

func jsonOrNull(b []byte) []byte {
	if json.Valid(b) {
		return b
	}
	return []byte("null")
}
