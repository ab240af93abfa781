// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used across
// the comment board client and the test backend.
//
// The first group is what the client shows to the user. The second group is
// what the backend writes into the "message" field of its error bodies; the
// client displays those verbatim.
package app

// User-facing texts shown by the client.
const (
	// MsgFillAllFields is shown when a form is submitted with an empty
	// required field. No request is sent in that case.
	MsgFillAllFields = "Please fill all fields"

	// MsgInvalidEmail is shown when the login or register e-mail is not an
	// address.
	MsgInvalidEmail = "Please enter a valid email"

	// MsgLoginFailed is the fallback when a login fails without a backend
	// message.
	MsgLoginFailed = "Login failed"

	// MsgRegistrationFailed is the fallback when a registration fails without
	// a backend message.
	MsgRegistrationFailed = "Registration failed"

	// MsgSubmitCommentFailed is the fallback when a comment is rejected
	// without a backend message.
	MsgSubmitCommentFailed = "Failed to submit comment"

	// MsgLoadCommentsFailed is logged and shown in the status line when the
	// feed could not be refreshed. The previous list stays on screen.
	MsgLoadCommentsFailed = "Could not refresh comments"

	// MsgCommentSubmitted confirms an accepted comment.
	MsgCommentSubmitted = "Comment submitted! It will be reviewed before appearing."

	// MsgNetworkUnavailable replaces transport errors, which are not useful
	// to the user as is.
	MsgNetworkUnavailable = "Network unavailable or server is down"

	// MsgSessionExpired is shown after a 401 forced a logout.
	MsgSessionExpired = "Your session has expired. Please log in again."

	// MsgWelcome greets the signed-in user; the name is appended.
	MsgWelcome = "Welcome, "

	// MsgLoggedOut confirms an explicit logout.
	MsgLoggedOut = "You have been logged out"

	// MsgCopied confirms that a comment was copied to the clipboard.
	MsgCopied = "Comment copied to clipboard"

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// written.
	MsgClipboardUnavailable = "Clipboard is not available"
)

// Backend error messages. They travel in the {"message": ...} body of non-2xx
// responses.
const (
	// MsgInvalidCredentials is returned by the login endpoint with 401.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserAlreadyExists is returned by the register endpoint when the
	// e-mail is taken.
	MsgUserAlreadyExists = "User already exists"

	// MsgMissingFields is returned when a request body lacks required fields.
	MsgMissingFields = "All fields are required"

	// MsgTokenIsNotValid is returned with 401 when the bearer token is
	// expired or cannot be verified.
	MsgTokenIsNotValid = "Token is not valid"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Server error"
)
