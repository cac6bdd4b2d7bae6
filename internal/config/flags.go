package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address, e.g. http://localhost:8000
//	-api-prefix API base path, e.g. /api/v1
//	-request-timeout request timeout (e.g. "30s", "1m"), 0 disables it
//	-storage local storage kind: sqlite, file or memory
//	-d local storage DSN (SQLite path or JSON file path)
//	-probe resource path requested from the home screen
//	-c/-config JSON or YAML config file path
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var apiPrefix string
	var requestTimeout time.Duration
	var storageKind string
	var storageDSN string
	var probePath string
	var configPath string

	flag.StringVar(&serverAddress, "a", "", "Server address, e.g. http://localhost:8000")
	flag.StringVar(&apiPrefix, "api-prefix", "", "API base path, e.g. /api/v1")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&storageKind, "storage", "", "Local storage kind: sqlite, file or memory")
	flag.StringVar(&storageDSN, "d", "", "Local storage DSN")
	flag.StringVar(&probePath, "probe", "", "Resource path requested from the home screen")
	flag.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ProbePath: probePath,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			APIPrefix:      apiPrefix,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Kind: storageKind,
			DB:   DB{DSN: storageDSN},
		},
		FilePath: configPath,
	}
}
