// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/logger"
)

const memoryDSN = ":memory:"

// Connection parameters forced onto every DSN unless the caller sets them.
var defaultDSNParams = map[string]string{
	"_foreign_keys": "on",
	"_busy_timeout": "5000",
}

// NewConnectSQLite opens the SQLite database named by cfg.DSN, creating the
// file (mode 0600) and its directory if needed, and pings it.
//
// Foreign keys are always enabled. The pool is limited to one connection:
// SQLite serializes writers anyway, and ":memory:" databases are per
// connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, dsn, err := buildDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("invalid database DSN")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}

	if path != memoryDSN {
		if err = createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// buildDSN splits raw into the file path and the go-sqlite3 DSN with the
// default parameters added.
func buildDSN(raw string) (path, dsn string, err error) {
	if raw == "" {
		return "", "", fmt.Errorf("empty DSN")
	}

	path, rawQuery, _ := strings.Cut(raw, "?")
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("parse DSN parameters: %w", err)
	}

	for key, value := range defaultDSNParams {
		if !params.Has(key) {
			params.Set(key, value)
		}
	}

	return strings.TrimPrefix(path, "file:"), path + "?" + params.Encode(), nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat DB file: %w", err)
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create DB dir: %w", err)
		}
	}

	f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
