// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to every environment variable the notebook reads.
const EnvPrefix = "NOTEBOOK_"

// Defaults applied when no source sets a value.
const (
	DefaultLogLevel        = "info"
	DefaultJanitorInterval = time.Minute
	DefaultPlaceholderTTL  = 24 * time.Hour
	defaultDBFile          = "notebook.db"
	defaultDataDir         = ".notebook"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging command-line flags, environment variables, an optional JSON
// file and defaults, in that order of precedence.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields, after [EnvPrefix].
type StructuredConfig struct {
	// Storage holds the SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log controls level and destination of the structured log.
	Log Log `envPrefix:"LOG_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: NOTEBOOK_CONFIG, flag: --config.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path, optionally followed by
	// go-sqlite3 query parameters (e.g. "notes.db?_busy_timeout=5000").
	// Env: NOTEBOOK_STORAGE_DB_DSN, flag: --db.
	DSN string `env:"DSN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: NOTEBOOK_LOG_LEVEL, flag: --log-level.
	Level string `env:"LEVEL"`

	// File is the log file path. Empty means stderr.
	// Env: NOTEBOOK_LOG_FILE, flag: --log-file.
	File string `env:"FILE"`
}

// Workers holds background worker settings.
type Workers struct {
	// JanitorInterval is how often the placeholder janitor runs.
	// Env: NOTEBOOK_WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`

	// PlaceholderTTL is how long a never-saved note survives before the
	// janitor removes it.
	// Env: NOTEBOOK_WORKERS_PLACEHOLDER_TTL
	PlaceholderTTL time.Duration `env:"PLACEHOLDER_TTL"`
}

// GetStructuredConfig loads, merges and validates the configuration.
// Precedence, highest first:
//  1. command-line flags
//  2. environment variables
//  3. JSON file (path taken from 1 or 2)
//  4. defaults
func GetStructuredConfig(flags Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN()}},
		Log:     Log{Level: DefaultLogLevel},
		Workers: Workers{
			JanitorInterval: DefaultJanitorInterval,
			PlaceholderTTL:  DefaultPlaceholderTTL,
		},
	}
}

func defaultDSN() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDBFile
	}
	return filepath.Join(home, defaultDataDir, defaultDBFile)
}
