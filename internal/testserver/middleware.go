// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-comment-board/internal/app"
	"github.com/MKhiriev/go-comment-board/internal/utils"
)

type ctxKey int

const userEmailCtxKey ctxKey = iota

// withRequestContext attaches the client's X-Request-ID and a request-scoped
// logger to the request context.
func (b *Backend) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = b.ids.Generate()
		}

		ctx := utils.WithRequestID(r.Context(), requestID)
		log := b.logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := utils.GetRequestIDFromContext(r.Context())

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     requestID,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		fail := b.failLeft > 0
		status := b.failStatus
		if fail {
			b.failLeft--
		}
		b.mu.Unlock()

		if fail {
			writeMessage(w, status, app.MsgInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth accepts anonymous requests. A request that does carry an
// Authorization header must carry a live token issued by this backend.
func (b *Backend) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := utils.ParseBearerToken(header)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, app.MsgTokenIsNotValid)
			return
		}

		email, err := b.parseToken(token)
		if err != nil {
			requestLogger(r).Debug().Err(err).Msg("rejected bearer token")
			writeMessage(w, http.StatusUnauthorized, app.MsgTokenIsNotValid)
			return
		}

		ctx := context.WithValue(r.Context(), userEmailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailCtxKey).(string)
	return email, ok
}
