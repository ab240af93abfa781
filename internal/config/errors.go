// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAdapterConfigs is returned when the backend address, timeout
	// or retry count is missing or out of range.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs is returned when the session database DSN is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidWorkerConfigs is returned when the refresh delay is not positive.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
