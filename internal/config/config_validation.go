// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks invariants that hold regardless of which binary consumes
// the merged [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.TickInterval < 0 || cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	for _, raw := range []string{
		cfg.Adapter.MainlandTakumiURL,
		cfg.Adapter.MainlandRecordURL,
		cfg.Adapter.GlobalTakumiURL,
		cfg.Adapter.GlobalRecordURL,
	} {
		if !isHTTPURL(raw) {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TickInterval <= 0 || cfg.Workers.RefreshInterval < cfg.Workers.TickInterval {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
