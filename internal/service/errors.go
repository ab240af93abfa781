// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyFields is returned when a required form field is empty. It is
	// detected locally; no request is sent.
	ErrEmptyFields = errors.New("required fields are empty")

	// ErrInvalidEmail is returned when the login or register e-mail is not
	// an address.
	ErrInvalidEmail = errors.New("invalid email")

	ErrLoginOnServer    = errors.New("login on server failed")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrSubmitComment    = errors.New("submit comment failed")
	ErrListComments     = errors.New("list comments failed")

	ErrLoadSession  = errors.New("load session failed")
	ErrSaveSession  = errors.New("save session failed")
	ErrClearSession = errors.New("clear session failed")
)
