// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backend kinds accepted by Storage.Kind.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress = "http://localhost:8000"
	DefaultAPIPrefix   = "/api/v1"
	DefaultStorageKind = StorageSQLite
	DefaultStorageDSN  = "erp-session.db"
	DefaultProbePath   = "/api/v1/users/me"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the interactive client itself.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the remote API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the local token storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ProbePath is the resource requested from the home screen to check that
	// the stored session is still accepted by the server.
	ProbePath string `env:"PROBE_PATH"`
}

// Adapter holds settings of the HTTP transport.
type Adapter struct {
	// HTTPAddress is the server base URL, e.g. "http://localhost:8000". A
	// bare host:port is accepted and treated as http.
	HTTPAddress string `env:"ADDRESS"`

	// APIPrefix is the base path of the API, prepended to the login endpoint.
	APIPrefix string `env:"API_PREFIX"`

	// RequestTimeout bounds every outbound request. Zero means no timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// Kind is one of StorageSQLite, StorageFile or StorageMemory.
	Kind string `env:"KIND"`

	// DB holds the connection settings of the selected backend.
	DB DB `envPrefix:"DB_"`
}

// DB holds the location of the local store.
type DB struct {
	// DSN is the SQLite database path for StorageSQLite or the JSON file path
	// for StorageFile. Ignored for StorageMemory.
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads configuration from environment variables,
// command-line flags and the optional config file, fills the remaining gaps
// with defaults and returns the merged result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ProbePath: DefaultProbePath,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
			APIPrefix:   DefaultAPIPrefix,
		},
		Storage: Storage{
			Kind: DefaultStorageKind,
			DB:   DB{DSN: DefaultStorageDSN},
		},
	}
}
