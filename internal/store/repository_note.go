// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/models"
)

// noteRepository is the SQLite-backed [NoteRepository].
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] on db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	salt, nonce, tag, ciphertext := bodyColumns(note.Body)

	_, err := n.DB.ExecContext(ctx, createNote,
		note.ID,
		nullString(note.CategoryID),
		note.Title,
		note.CreatedAt.UTC(),
		note.UpdatedAt.UTC(),
		salt,
		nonce,
		tag,
		ciphertext,
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("note_id", note.ID).
			Msg("failed to insert note")
		return classifySQLiteError(err, ErrExecutingStatement, ErrCategoryNotFound)
	}

	return nil
}

func (n *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := scanNote(n.DB.QueryRowContext(ctx, getNote, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if errors.Is(err, ErrInconsistentRecord) {
		log.Error().
			Str("func", "noteRepository.GetNote").
			Str("note_id", id).
			Msg("stored note body is inconsistent")
		return models.Note{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (n *noteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to create query")
		return nil, err
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to execute query for notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if errors.Is(scanErr, ErrInconsistentRecord) {
			log.Error().Str("func", "noteRepository.ListNotes").Msg("stored note body is inconsistent")
			return nil, scanErr
		}
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.ListNotes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// SaveNoteBody writes all four record fields, the title and updated_at in a
// single UPDATE. The record is validated first so a malformed record never
// reaches the database.
func (n *noteRepository) SaveNoteBody(ctx context.Context, id, title string, record crypto.EncryptedRecord, updatedAt time.Time) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentRecord, err)
	}

	return n.execByID(ctx, "noteRepository.SaveNoteBody", id, saveNoteBody,
		title,
		updatedAt.UTC(),
		record.Salt,
		record.Nonce,
		record.Tag,
		record.Ciphertext,
		id,
	)
}

func (n *noteRepository) MoveNote(ctx context.Context, id string, categoryID *string, updatedAt time.Time) error {
	return n.execByID(ctx, "noteRepository.MoveNote", id, moveNote, nullString(categoryID), updatedAt.UTC(), id)
}

func (n *noteRepository) DeleteNote(ctx context.Context, id string) error {
	return n.execByID(ctx, "noteRepository.DeleteNote", id, deleteNote, id)
}

func (n *noteRepository) DeletePlaceholders(ctx context.Context, createdBefore time.Time) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, deletePlaceholders, createdBefore.UTC())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeletePlaceholders").Msg("failed to delete placeholders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.DeletePlaceholders").Msg("failed to scan deleted id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.DeletePlaceholders").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

// execByID runs a single-row statement and maps zero affected rows to
// [ErrNoteNotFound].
func (n *noteRepository) execByID(ctx context.Context, fn, id, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("note_id", id).Msg("failed to execute statement")
		return classifySQLiteError(err, ErrExecutingStatement, ErrCategoryNotFound)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("note_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
