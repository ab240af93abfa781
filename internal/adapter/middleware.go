// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// requestID stamps every outgoing request with a fresh identifier, both as a
// header and in the request context for the logging middleware.
func requestID(ids *utils.UUIDGenerator) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		id := ids.Generate()
		req.SetHeader(headerRequestID, id)
		req.SetContext(utils.WithRequestID(req.Context(), id))
		return nil
	}
}

// bearerAuth attaches the current token as "Authorization: Bearer <token>".
// The token is read on every request and passed through unmodified.
func bearerAuth(creds Credentials) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		if token := creds.Token(); token != "" {
			req.SetHeader(headerAuthorization, utils.BearerHeader(token))
		}
		return nil
	}
}

// expireOnUnauthorized reports every 401 to the session owner. It never
// returns an error: the rejection reaches the caller through mapHTTPError.
func expireOnUnauthorized(creds Credentials) resty.ResponseMiddleware {
	return func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			creds.Expire(resp.Request.Context())
		}
		return nil
	}
}

func logResponse(log *logger.Logger) resty.ResponseMiddleware {
	return func(_ *resty.Client, resp *resty.Response) error {
		id, _ := utils.GetRequestIDFromContext(resp.Request.Context())
		log.Debug().
			Str("request_id", id).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("backend response")
		return nil
	}
}

func logTransportError(log *logger.Logger) resty.ErrorHook {
	return func(req *resty.Request, err error) {
		id, _ := utils.GetRequestIDFromContext(req.Context())
		log.Warn().
			Err(err).
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("backend request failed")
	}
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }

func (l restyLogger) Warnf(format string, v ...any) { l.log.Warn().Msgf(format, v...) }

func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
