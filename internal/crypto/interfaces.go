// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing used by the in-memory backend.
// The client itself never sees a password hash: it only forwards the typed
// password to the backend over the Login and Register calls.
package crypto

// PasswordHasher turns passwords into self-describing Argon2id hashes and
// checks passwords against them.
type PasswordHasher interface {
	// Hash derives a new encoded hash of password with a fresh random salt.
	// The result carries the Argon2id parameters, so hashes stay verifiable
	// after the parameters change.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value returns [ErrMalformedHash].
	Verify(password, encoded string) (bool, error)
}
