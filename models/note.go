// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-notebook/internal/crypto"
)

// UntitledNote is the title given to a note whose content has no non-empty line.
const UntitledNote = "Untitled Note"

// Note is a single notebook entry. Title and timestamps are stored in plain
// text; the content exists only inside Body.
type Note struct {
	// ID is a UUIDv7 string assigned on creation.
	ID string

	// CategoryID is the owning category, nil when the note is detached
	// (its category was deleted or it was never filed).
	CategoryID *string

	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Body is Empty until the first successful save.
	Body crypto.SealedBody
}

// IsPlaceholder reports whether the note has never been sealed.
func (n Note) IsPlaceholder() bool {
	return !n.Body.IsSealed()
}

// NoteFilter narrows a note listing.
type NoteFilter struct {
	// CategoryID restricts the listing to one category. Nil lists every note.
	CategoryID *string

	// Uncategorized lists only notes with no category. Ignored when
	// CategoryID is set.
	Uncategorized bool

	// PlaceholdersOnly lists only never-sealed notes.
	PlaceholdersOnly bool

	// CreatedBefore lists only notes created strictly before this instant.
	CreatedBefore *time.Time
}

// NoteDraft is the plaintext input of a save. An empty Title means the title
// is derived from Content.
type NoteDraft struct {
	ID      string
	Content string
	Title   string
}
