// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	tagRequired = "required"
	tagEmail    = "email"
)

// DraftValidator validates the form models by their `validate` tags.
type DraftValidator struct {
	validate *validator.Validate
}

func NewDraftValidator() Validator {
	return &DraftValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements [Validator]. fields are struct field names; when given,
// only those fields are checked. The first failing field decides the error:
// an empty required field wins over a malformed one.
func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == tagRequired {
			return fmt.Errorf("%w: %s", ErrEmptyField, fe.Field())
		}
	}

	fe := fieldErrs[0]
	if fe.Tag() == tagEmail {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, fe.Field())
	}
	return fmt.Errorf("%w: %s failed on %q", ErrInvalidField, fe.Field(), fe.Tag())
}
