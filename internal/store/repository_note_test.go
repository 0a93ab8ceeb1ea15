// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/models"
)

func TestNoteRepository_PlaceholderRoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("n1", nil, baseTime)))

	got, err := s.NoteRepository.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "New Note", got.Title)
	assert.Nil(t, got.CategoryID)
	assert.True(t, got.CreatedAt.Equal(baseTime))
	assert.Equal(t, crypto.BodyEmpty, got.Body.State())
}

// TestNoteRepository_SealedBodyRoundTrip verifies that all four record fields
// come back byte-for-byte.
func TestNoteRepository_SealedBodyRoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("n1", nil, baseTime)))

	record := testRecord(0x10)
	updated := baseTime.Add(time.Minute)
	require.NoError(t, s.NoteRepository.SaveNoteBody(ctx, "n1", "Groceries", record, updated))

	got, err := s.NoteRepository.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.True(t, got.UpdatedAt.Equal(updated))

	stored, ok := got.Body.Record()
	require.True(t, ok)
	assert.True(t, record.Equal(stored))
}

func TestNoteRepository_CreateSealed(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	note := newNote("n1", nil, baseTime)
	note.Body = sealedBody(t, 0x40)
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	got, err := s.NoteRepository.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, got.Body.IsSealed())
}

func TestNoteRepository_SaveNoteBodyRejectsInvalidRecord(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("n1", nil, baseTime)))

	partial := testRecord(1)
	partial.Tag = nil

	err := s.NoteRepository.SaveNoteBody(ctx, "n1", "t", partial, baseTime)
	assert.ErrorIs(t, err, ErrInconsistentRecord)

	got, err := s.NoteRepository.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.False(t, got.Body.IsSealed(), "nothing may be written for a rejected record")
}

func TestNoteRepository_SaveNoteBodyMissingNote(t *testing.T) {
	s := newSQLiteStorages(t)

	err := s.NoteRepository.SaveNoteBody(testContext(), "ghost", "t", testRecord(1), baseTime)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_CreateInMissingCategory(t *testing.T) {
	s := newSQLiteStorages(t)

	err := s.NoteRepository.CreateNote(testContext(), newNote("n1", ptr("ghost"), baseTime))
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNoteRepository_GetMissing(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.NoteRepository.GetNote(testContext(), "ghost")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_ListNewestFirst(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.CategoryRepository.CreateCategory(ctx, newCategory("c1", "Work", nil)))

	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("old", ptr("c1"), baseTime)))
	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("new", ptr("c1"), baseTime.Add(2*time.Hour))))
	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("mid", ptr("c1"), baseTime.Add(time.Hour))))
	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("loose", nil, baseTime)))

	inCategory, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{CategoryID: ptr("c1")})
	require.NoError(t, err)
	require.Len(t, inCategory, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{inCategory[0].ID, inCategory[1].ID, inCategory[2].ID})

	loose, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{Uncategorized: true})
	require.NoError(t, err)
	require.Len(t, loose, 1)
	assert.Equal(t, "loose", loose[0].ID)

	all, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestNoteRepository_MoveAndDelete(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.CategoryRepository.CreateCategory(ctx, newCategory("c1", "Work", nil)))
	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("n1", nil, baseTime)))

	require.NoError(t, s.NoteRepository.MoveNote(ctx, "n1", ptr("c1"), baseTime.Add(time.Second)))
	got, err := s.NoteRepository.GetNote(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, "c1", *got.CategoryID)

	assert.ErrorIs(t, s.NoteRepository.MoveNote(ctx, "n1", ptr("ghost"), baseTime), ErrCategoryNotFound)
	assert.ErrorIs(t, s.NoteRepository.MoveNote(ctx, "ghost", nil, baseTime), ErrNoteNotFound)

	require.NoError(t, s.NoteRepository.DeleteNote(ctx, "n1"))
	_, err = s.NoteRepository.GetNote(ctx, "n1")
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.ErrorIs(t, s.NoteRepository.DeleteNote(ctx, "n1"), ErrNoteNotFound)
}

func TestNoteRepository_DeletePlaceholders(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("stale", nil, baseTime)))
	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("fresh", nil, baseTime.Add(2*time.Hour))))

	require.NoError(t, s.NoteRepository.CreateNote(ctx, newNote("sealed", nil, baseTime)))
	require.NoError(t, s.NoteRepository.SaveNoteBody(ctx, "sealed", "Kept", testRecord(7), baseTime))

	deleted, err := s.NoteRepository.DeletePlaceholders(ctx, baseTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, deleted)

	remaining, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "fresh", remaining[0].ID)
	assert.Equal(t, "sealed", remaining[1].ID)
}

// TestNoteRepository_InconsistentRow verifies that a row with a partial body
// is reported, not turned into a record.
func TestNoteRepository_InconsistentRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows(noteColumns).
		AddRow("n1", nil, "t", baseTime, baseTime, make([]byte, crypto.SaltSize), nil, nil, []byte("c"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, category_id")).
		WithArgs("n1").
		WillReturnRows(rows)

	_, err := repo.GetNote(testContext(), "n1")
	assert.ErrorIs(t, err, ErrInconsistentRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListInconsistentRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows(noteColumns).
		AddRow("n1", "c1", "t", baseTime, baseTime, make([]byte, 4), make([]byte, crypto.NonceSize), make([]byte, crypto.TagSize), []byte("c"))
	mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnRows(rows)

	_, err := repo.ListNotes(testContext(), models.NoteFilter{})
	assert.ErrorIs(t, err, ErrInconsistentRecord)
	assert.ErrorIs(t, err, crypto.ErrInvalidInputLength)
}

func TestNoteRepository_ListQueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ListNotes(testContext(), models.NoteFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNoteRepository_RowsIterationError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow("a").
		RowError(0, errors.New("row broken"))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM notes")).WillReturnRows(rows)

	_, err := repo.DeletePlaceholders(testContext(), baseTime)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestNoteRepository_SaveNoteBodyExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(newDBFromSQL(db), logger.Nop())

	record := testRecord(1)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notes")).
		WithArgs("title", sqlmock.AnyArg(), record.Salt, record.Nonce, record.Tag, record.Ciphertext, "n1").
		WillReturnError(errors.New("database is closed"))

	err := repo.SaveNoteBody(testContext(), "n1", "title", record, baseTime)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_bodyFromColumns(t *testing.T) {
	r := testRecord(9)

	tests := []struct {
		name      string
		cols      [4][]byte
		wantState crypto.BodyState
		wantErr   bool
	}{
		{name: "all null", cols: [4][]byte{nil, nil, nil, nil}, wantState: crypto.BodyEmpty},
		{name: "complete", cols: [4][]byte{r.Salt, r.Nonce, r.Tag, r.Ciphertext}, wantState: crypto.BodySealed},
		{name: "missing nonce", cols: [4][]byte{r.Salt, nil, r.Tag, r.Ciphertext}, wantErr: true},
		{name: "only ciphertext", cols: [4][]byte{nil, nil, nil, r.Ciphertext}, wantErr: true},
		{name: "short tag", cols: [4][]byte{r.Salt, r.Nonce, r.Tag[:8], r.Ciphertext}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := bodyFromColumns(tt.cols[0], tt.cols[1], tt.cols[2], tt.cols[3])
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInconsistentRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, body.State())
		})
	}
}
