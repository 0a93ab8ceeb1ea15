// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CategoryService manages the category tree.
type CategoryService interface {
	// Create adds a category named name under parentID, or at the root when
	// parentID is nil.
	Create(ctx context.Context, name string, parentID *string) (models.Category, error)
	Get(ctx context.Context, id string) (models.Category, error)
	// Roots lists the top-level categories sorted by name.
	Roots(ctx context.Context) ([]models.Category, error)
	// Children lists the direct children of id sorted by name.
	Children(ctx context.Context, id string) ([]models.Category, error)
	// Tree returns the whole forest, siblings sorted by name.
	Tree(ctx context.Context) ([]models.CategoryNode, error)
	Rename(ctx context.Context, id, name string) error
	// Move reparents id under parentID (nil makes it a root). Moving a
	// category into its own subtree fails with ErrCategoryCycle.
	Move(ctx context.Context, id string, parentID *string) error
	// Delete removes the category with its subtree. Their notes are kept
	// and detached.
	Delete(ctx context.Context, id string) error
}

// NoteService manages the note lifecycle. Save, Open, Move and Delete on the
// same note id never run concurrently.
type NoteService interface {
	// Create adds an empty placeholder note, optionally filed in categoryID.
	Create(ctx context.Context, categoryID *string) (models.Note, error)
	Get(ctx context.Context, id string) (models.Note, error)
	// List returns the notes matching filter, newest first.
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	// Save seals draft.Content under password with a fresh salt and nonce
	// and replaces the note's title and body in one write.
	Save(ctx context.Context, draft models.NoteDraft, password string) (models.Note, error)
	// Open returns the plaintext of a sealed note.
	Open(ctx context.Context, id, password string) (string, error)
	Move(ctx context.Context, id string, categoryID *string) error
	Delete(ctx context.Context, id string) error
	// PurgePlaceholders deletes notes that were never sealed and are older
	// than olderThan, returning their ids.
	PurgePlaceholders(ctx context.Context, olderThan time.Duration) ([]string, error)
}

// IDGenerator produces identifiers for new categories and notes.
type IDGenerator interface {
	Generate() string
}
