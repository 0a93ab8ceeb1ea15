// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/internal/store"
	"github.com/MKhiriev/go-notebook/models"
)

// noteService owns the note lifecycle. Each mutation or unlock of a note
// holds that note's lock, so a Save can never interleave with another Save,
// an Open or a Delete of the same note.
type noteService struct {
	notes      store.NoteRepository
	categories store.CategoryRepository
	crypto     crypto.NoteCrypto
	broker     *Broker
	locks      *keyedMutex

	options
}

func NewNoteService(
	notes store.NoteRepository,
	categories store.CategoryRepository,
	noteCrypto crypto.NoteCrypto,
	broker *Broker,
	opts ...Option,
) NoteService {
	return &noteService{
		notes:      notes,
		categories: categories,
		crypto:     noteCrypto,
		broker:     broker,
		locks:      newKeyedMutex(),
		options:    buildOptions(opts),
	}
}

func (n *noteService) Create(ctx context.Context, categoryID *string) (models.Note, error) {
	if categoryID != nil {
		if _, err := n.categories.GetCategory(ctx, *categoryID); err != nil {
			return models.Note{}, fmt.Errorf("get category: %w", err)
		}
	}

	now := n.timestamp()
	note := models.Note{
		ID:         n.ids.Generate(),
		CategoryID: categoryID,
		Title:      NewNoteTitle,
		CreatedAt:  now,
		UpdatedAt:  now,
		Body:       crypto.EmptyBody(),
	}

	if err := n.notes.CreateNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "noteService.Create").
		Str("note_id", note.ID).
		Msg("placeholder note created")
	n.broker.Publish(models.Event{Kind: models.EventNoteCreated, ID: note.ID})

	return note, nil
}

func (n *noteService) Get(ctx context.Context, id string) (models.Note, error) {
	note, err := n.notes.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (n *noteService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := n.notes.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (n *noteService) Save(ctx context.Context, draft models.NoteDraft, password string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, draft); err != nil {
		return models.Note{}, fmt.Errorf("validate note: %w", err)
	}
	if password == "" {
		return models.Note{}, ErrPasswordRequired
	}

	unlock := n.locks.Lock(draft.ID)
	defer unlock()

	note, err := n.notes.GetNote(ctx, draft.ID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}

	// key derivation is the slow part; do not start it for a caller that left
	if err = ctx.Err(); err != nil {
		return models.Note{}, err
	}

	record, err := n.crypto.Seal(draft.Content, password)
	if err != nil {
		log.Err(err).
			Str("func", "noteService.Save").
			Str("note_id", draft.ID).
			Str("kind", crypto.KindOf(err).String()).
			Msg("failed to seal note")
		return models.Note{}, fmt.Errorf("seal note: %w", err)
	}

	body, err := crypto.SealedWith(record)
	if err != nil {
		return models.Note{}, fmt.Errorf("seal note: %w", err)
	}

	title := resolveTitle(draft)
	updatedAt := n.timestamp()
	if err = n.notes.SaveNoteBody(ctx, draft.ID, title, record, updatedAt); err != nil {
		return models.Note{}, fmt.Errorf("save note body: %w", err)
	}

	note.Title = title
	note.UpdatedAt = updatedAt
	note.Body = body

	log.Info().
		Str("func", "noteService.Save").
		Str("note_id", note.ID).
		Msg("note sealed and saved")
	n.broker.Publish(models.Event{Kind: models.EventNoteSaved, ID: note.ID})

	return note, nil
}

func (n *noteService) Open(ctx context.Context, id, password string) (string, error) {
	unlock := n.locks.Lock(id)
	defer unlock()

	note, err := n.notes.GetNote(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get note: %w", err)
	}
	if !note.Body.IsSealed() {
		return "", fmt.Errorf("open note: %w", crypto.ErrEmptyRecord)
	}
	if password == "" {
		return "", ErrPasswordRequired
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	plaintext, err := n.crypto.OpenBody(note.Body, password)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "noteService.Open").
			Str("note_id", id).
			Str("kind", crypto.KindOf(err).String()).
			Msg("failed to open note")
		return "", fmt.Errorf("open note: %w", err)
	}

	return plaintext, nil
}

func (n *noteService) Move(ctx context.Context, id string, categoryID *string) error {
	unlock := n.locks.Lock(id)
	defer unlock()

	if categoryID != nil {
		if _, err := n.categories.GetCategory(ctx, *categoryID); err != nil {
			return fmt.Errorf("get category: %w", err)
		}
	}

	if err := n.notes.MoveNote(ctx, id, categoryID, n.timestamp()); err != nil {
		return fmt.Errorf("move note: %w", err)
	}

	n.broker.Publish(models.Event{Kind: models.EventNoteMoved, ID: id})
	return nil
}

func (n *noteService) Delete(ctx context.Context, id string) error {
	unlock := n.locks.Lock(id)
	defer unlock()

	if err := n.notes.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "noteService.Delete").
		Str("note_id", id).
		Msg("note deleted")
	n.broker.Publish(models.Event{Kind: models.EventNoteDeleted, ID: id})

	return nil
}

func (n *noteService) PurgePlaceholders(ctx context.Context, olderThan time.Duration) ([]string, error) {
	if olderThan < 0 {
		olderThan = 0
	}
	cutoff := n.timestamp().Add(-olderThan)

	ids, err := n.notes.DeletePlaceholders(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete placeholders: %w", err)
	}

	if len(ids) > 0 {
		logger.FromContext(ctx).Info().
			Str("func", "noteService.PurgePlaceholders").
			Int("count", len(ids)).
			Time("cutoff", cutoff).
			Msg("placeholder notes purged")
	}
	for _, id := range ids {
		n.broker.Publish(models.Event{Kind: models.EventNoteDeleted, ID: id})
	}

	return ids, nil
}
