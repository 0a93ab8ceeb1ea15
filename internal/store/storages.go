// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/logger"
)

// Storages groups the repositories handed to the service layer and owns the
// underlying connection.
type Storages struct {
	CategoryRepository CategoryRepository
	NoteRepository     NoteRepository

	db *DB
}

// NewStorages opens the SQLite database named in cfg, applies pending
// migrations and wires the repositories. Failures are returned, never fatal.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CategoryRepository: NewCategoryRepository(db, logger),
		NoteRepository:     NewNoteRepository(db, logger),
		db:                 db,
	}, nil
}

// Close closes the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
