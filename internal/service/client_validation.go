// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/validators"
)

// mapValidationError translates a validators error into a service error.
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrEmptyField):
		return fmt.Errorf("%w: %v", ErrEmptyFields, err)
	case errors.Is(err, validators.ErrInvalidEmail):
		return fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	default:
		return err
	}
}
