// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notebook/models"
)

const (
	createCategory = `INSERT INTO categories (id, name, parent_id, created_at) VALUES (?, ?, ?, ?);`

	getCategory = `SELECT id, name, parent_id, created_at FROM categories WHERE id = ?;`

	renameCategory = `UPDATE categories SET name = ? WHERE id = ?;`

	moveCategory = `UPDATE categories SET parent_id = ? WHERE id = ?;`

	deleteCategory = `DELETE FROM categories WHERE id = ?;`

	createNote = `INSERT INTO notes (id, category_id, title, created_at, updated_at, salt, nonce, tag, ciphertext)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getNote = `SELECT id, category_id, title, created_at, updated_at, salt, nonce, tag, ciphertext
		FROM notes WHERE id = ?;`

	saveNoteBody = `UPDATE notes
		SET title = ?, updated_at = ?, salt = ?, nonce = ?, tag = ?, ciphertext = ?
		WHERE id = ?;`

	moveNote = `UPDATE notes SET category_id = ?, updated_at = ? WHERE id = ?;`

	deleteNote = `DELETE FROM notes WHERE id = ?;`

	deletePlaceholders = `DELETE FROM notes
		WHERE ciphertext IS NULL AND created_at < ?
		RETURNING id;`
)

var (
	categoryColumns = []string{"id", "name", "parent_id", "created_at"}
	noteColumns     = []string{"id", "category_id", "title", "created_at", "updated_at", "salt", "nonce", "tag", "ciphertext"}
)

// buildListCategoriesQuery selects the children of parentID, or the roots
// when parentID is nil, sorted by name.
func buildListCategoriesQuery(parentID *string) (string, []any, error) {
	q := sq.Select(categoryColumns...).
		From("categories").
		OrderBy("name", "id").
		PlaceholderFormat(sq.Question)

	if parentID == nil {
		q = q.Where(sq.Eq{"parent_id": nil})
	} else {
		q = q.Where(sq.Eq{"parent_id": *parentID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListAllCategoriesQuery selects every category sorted by name.
func buildListAllCategoriesQuery() (string, []any, error) {
	query, args, err := sq.Select(categoryColumns...).
		From("categories").
		OrderBy("name", "id").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListNotesQuery renders filter as a SELECT over notes, newest first.
// Ties on created_at are broken by id, which for UUIDv7 is also time-ordered.
func buildListNotesQuery(filter models.NoteFilter) (string, []any, error) {
	q := sq.Select(noteColumns...).
		From("notes").
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Question)

	switch {
	case filter.CategoryID != nil:
		q = q.Where(sq.Eq{"category_id": *filter.CategoryID})
	case filter.Uncategorized:
		q = q.Where(sq.Eq{"category_id": nil})
	}

	if filter.PlaceholdersOnly {
		q = q.Where(sq.Eq{"ciphertext": nil})
	}

	if filter.CreatedBefore != nil {
		q = q.Where(sq.Lt{"created_at": filter.CreatedBefore.UTC()})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
