package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// ProbePath is the resource fetched by the home screen.
	ProbePath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// APIPrefix is the API base path, e.g. "/api/v1".
	APIPrefix string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path or JSON file path, depending on the storage kind.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Kind selects the backend: sqlite, file or memory.
	Kind string
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter
	// Storage contains local token storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ProbePath: cfg.App.ProbePath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIPrefix:      cfg.Adapter.APIPrefix,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Kind: cfg.Storage.Kind,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}
}
