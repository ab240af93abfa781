// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "comment-board.db"
	DefaultRefreshDelay   = time.Second
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogFile string
}

// ClientAdapter holds the settings used by the HTTP server adapter.
type ClientAdapter struct {
	// HTTPAddress is the base address of the REST backend.
	HTTPAddress string

	// RequestTimeout is the per-request timeout.
	RequestTimeout time.Duration

	// FetchRetries is the retry count for the comment feed GET.
	FetchRetries int
}

// ClientDB holds the sqlite DSN of the session database.
type ClientDB struct {
	DSN string
}

// ClientStorage groups the client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds background job timing.
type ClientWorkers struct {
	RefreshDelay time.Duration
}

// ClientConfig is the validated configuration of the client binary.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the structured configuration from env, args and the
// optional JSON file, fills unset fields with defaults and validates the
// result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			FetchRetries:   cfg.Adapter.FetchRetries,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshDelay: cfg.Workers.RefreshDelay},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Workers.RefreshDelay == 0 {
		cfg.Workers.RefreshDelay = DefaultRefreshDelay
	}
}
