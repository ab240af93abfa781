// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before defaults are applied.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and HTTP client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds timing for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the client appends its JSON log to.
	// Empty means a "logs" file next to the executable.
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the sqlite session database location.
type DB struct {
	DSN string `env:"DSN"`
}

// Adapter holds the backend connection settings.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without scheme.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single HTTP request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FetchRetries is how many times a failed comment feed fetch is retried
	// with backoff. Zero keeps the feed stale until the next explicit fetch.
	FetchRetries int `env:"FETCH_RETRIES"`
}

// Workers holds timing for background jobs.
type Workers struct {
	// RefreshDelay is the pause between a successful comment submission and
	// the feed re-fetch.
	RefreshDelay time.Duration `env:"REFRESH_DELAY"`
}

// GetStructuredConfig merges env, flags parsed from args, and the optional
// JSON file into one [StructuredConfig].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
