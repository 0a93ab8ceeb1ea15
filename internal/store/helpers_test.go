package store

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{DB: db, logger: logger.Nop()}
}

// newSQLiteStorages opens a migrated database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "notebook.db")}}
	s, err := NewStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(fill byte) crypto.EncryptedRecord {
	return crypto.EncryptedRecord{
		Salt:       bytes.Repeat([]byte{fill}, crypto.SaltSize),
		Nonce:      bytes.Repeat([]byte{fill + 1}, crypto.NonceSize),
		Ciphertext: []byte("ciphertext bytes"),
		Tag:        bytes.Repeat([]byte{fill + 2}, crypto.TagSize),
	}
}

func sealedBody(t *testing.T, fill byte) crypto.SealedBody {
	t.Helper()
	body, err := crypto.SealedWith(testRecord(fill))
	require.NoError(t, err)
	return body
}

func ptr(s string) *string { return &s }

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newCategory(id, name string, parentID *string) models.Category {
	return models.Category{ID: id, Name: name, ParentID: parentID, CreatedAt: baseTime}
}

func newNote(id string, categoryID *string, createdAt time.Time) models.Note {
	return models.Note{ID: id, CategoryID: categoryID, Title: "New Note", CreatedAt: createdAt, UpdatedAt: createdAt}
}
