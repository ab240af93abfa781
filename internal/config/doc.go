// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the comment board client.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is not overwritten by later ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive defaults in [GetClientConfig],
// which is the main entry point.
package config
