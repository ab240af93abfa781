// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the comment board client runtime.
//
// It restores the persisted session, wires the HTTP adapter with the session
// as its credentials, and runs the terminal UI as a single process lifecycle.
package client
