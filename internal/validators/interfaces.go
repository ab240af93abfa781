// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client forms before they are sent.
//
// Core concepts:
//   - Validator: generic interface to validate a form value, optionally
//     restricted to some of its fields.
//   - Rules live in `validate` struct tags on the models and are evaluated by
//     go-playground/validator.
//
// A failed check is reported with a package sentinel ([ErrEmptyField],
// [ErrInvalidEmail]) so callers can pick the user-facing text with
// [errors.Is] without looking at validator internals.
package validators

import "context"

// Validator defines a generic validation interface for form values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
