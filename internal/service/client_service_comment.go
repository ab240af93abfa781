// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/adapter"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/validators"
	"github.com/MKhiriev/go-comment-board/internal/workers"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/sethvargo/go-retry"
)

const fetchRetryBase = 200 * time.Millisecond

type commentService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	refresher *workers.Delayed

	fetchRetries int
	updates      chan FeedUpdate

	logger *logger.Logger
}

// NewCommentService creates a [CommentService]. refresher runs the
// post-submit refresh. fetchRetries above zero retries a failed feed fetch
// with exponential backoff; zero keeps the single-attempt behaviour.
func NewCommentService(
	serverAdapter adapter.ServerAdapter,
	validator validators.Validator,
	refresher *workers.Delayed,
	fetchRetries int,
	logger *logger.Logger,
) CommentService {
	if fetchRetries < 0 {
		fetchRetries = 0
	}
	return &commentService{
		adapter:      serverAdapter,
		validator:    validator,
		refresher:    refresher,
		fetchRetries: fetchRetries,
		updates:      make(chan FeedUpdate, 1),
		logger:       logger,
	}
}

// List implements [CommentService].
func (c *commentService) List(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment

	backoff := retry.WithMaxRetries(uint64(c.fetchRetries), retry.NewExponential(fetchRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		comments, err = c.adapter.ListComments(ctx)
		if err == nil {
			return nil
		}
		if isRetryableFetchError(err) {
			c.logger.Debug().Err(err).Str("func", "commentService.List").Msg("feed fetch failed")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "commentService.List").Msg("failed to load comments, keeping the previous list")
		return nil, fmt.Errorf("%w: %w", ErrListComments, err)
	}

	return comments, nil
}

// Submit implements [CommentService].
func (c *commentService) Submit(ctx context.Context, draft models.CommentDraft) error {
	if err := c.validator.Validate(ctx, draft); err != nil {
		return mapValidationError(err)
	}

	if err := c.adapter.SubmitComment(ctx, draft); err != nil {
		c.logger.Warn().Err(err).Str("func", "commentService.Submit").Msg("comment rejected")
		return fmt.Errorf("%w: %w", ErrSubmitComment, err)
	}

	c.logger.Info().Str("func", "commentService.Submit").Msg("comment submitted")
	return nil
}

// ScheduleRefresh implements [CommentService].
func (c *commentService) ScheduleRefresh(ctx context.Context) {
	c.logger.Debug().
		Str("func", "commentService.ScheduleRefresh").
		Dur("delay", c.refresher.Delay()).
		Msg("feed refresh scheduled")

	c.refresher.Schedule(ctx, func(ctx context.Context) {
		comments, err := c.List(ctx)
		if ctx.Err() != nil {
			return
		}
		c.publish(FeedUpdate{Comments: comments, Err: err})
	})
}

// Updates implements [CommentService].
func (c *commentService) Updates() <-chan FeedUpdate {
	return c.updates
}

// Stop implements [CommentService].
func (c *commentService) Stop() {
	c.refresher.Stop()
}

// publish replaces an unread update with u.
func (c *commentService) publish(u FeedUpdate) {
	for {
		select {
		case c.updates <- u:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

// isRetryableFetchError reports whether a feed fetch may succeed when
// repeated. Backend rejections below 500 will not.
func isRetryableFetchError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
