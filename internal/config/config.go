// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the cookie sealing key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the optional local status API listener.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the game record API hosts and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the poll loop timing.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level values.
type App struct {
	// HashKey is the secret the cookie sealing key is derived from.
	// Changing it makes previously stored cookies unreadable.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version overrides the build version reported by the status API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds the local status API settings.
type Server struct {
	// HTTPAddress is the loopback "host:port" the status API listens on.
	// The API is disabled when empty.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each inbound status API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is either a SQLite file path or a postgres:// URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the game record API settings. Hosts are overridable so the
// client can be pointed at a mirror or a test server.
type Adapter struct {
	// Env: ADAPTER_MAINLAND_TAKUMI_URL
	MainlandTakumiURL string `env:"MAINLAND_TAKUMI_URL"`
	// Env: ADAPTER_MAINLAND_RECORD_URL
	MainlandRecordURL string `env:"MAINLAND_RECORD_URL"`
	// Env: ADAPTER_GLOBAL_TAKUMI_URL
	GlobalTakumiURL string `env:"GLOBAL_TAKUMI_URL"`
	// Env: ADAPTER_GLOBAL_RECORD_URL
	GlobalRecordURL string `env:"GLOBAL_RECORD_URL"`

	// Language is sent as x-rpc-language to the global region.
	// Env: ADAPTER_LANGUAGE
	Language string `env:"LANGUAGE"`

	// RequestTimeout bounds every outbound API call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the poll loop timing.
type Workers struct {
	// TickInterval is how often the poll loop wakes up to check whether a
	// refresh is due.
	// Env: WORKERS_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// RefreshInterval is the minimum time between two note fetches for the
	// same target.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults fill whatever is still zero afterwards.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}
