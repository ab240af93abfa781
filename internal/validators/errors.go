// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyField   = errors.New("field is required")
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidField = errors.New("invalid field")
)
