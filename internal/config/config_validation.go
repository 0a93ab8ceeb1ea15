// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Workers.JanitorInterval <= 0 {
		return fmt.Errorf("%w: janitor interval must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.PlaceholderTTL <= 0 {
		return fmt.Errorf("%w: placeholder ttl must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
