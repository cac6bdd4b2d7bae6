// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] before it is mapped into a
// [ClientConfig]. Field-level rules live in [ClientConfig.validate]; here only
// the config file reference is checked.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.FilePath) != cfg.FilePath {
		return fmt.Errorf("config file path has surrounding spaces: %q", cfg.FilePath)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.APIPrefix != "" && !strings.HasPrefix(cfg.Adapter.APIPrefix, "/") {
		return fmt.Errorf("%w: api prefix must start with '/'", ErrInvalidAdapterConfigs)
	}

	switch cfg.Storage.Kind {
	case StorageSQLite, StorageFile:
		if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
			return fmt.Errorf("%w: empty dsn for %s storage", ErrInvalidStorageConfigs, cfg.Storage.Kind)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: unknown storage kind %q", ErrInvalidStorageConfigs, cfg.Storage.Kind)
	}

	probe := cfg.App.ProbePath
	if probe != "" && !strings.HasPrefix(probe, "/") && !strings.Contains(probe, "://") {
		return ErrInvalidAppConfigs
	}

	return nil
}
