// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.FetchRetries < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" ||
		cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.FetchRetries < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
