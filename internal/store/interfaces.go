package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CategoryRepository persists the category tree.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) error
	GetCategory(ctx context.Context, id string) (models.Category, error)
	// ListCategories returns the direct children of parentID sorted by name,
	// or the root categories when parentID is nil.
	ListCategories(ctx context.Context, parentID *string) ([]models.Category, error)
	// ListAllCategories returns every category sorted by name.
	ListAllCategories(ctx context.Context) ([]models.Category, error)
	RenameCategory(ctx context.Context, id, name string) error
	MoveCategory(ctx context.Context, id string, parentID *string) error
	// DeleteCategory removes the category and its whole subtree. Notes in
	// removed categories are kept and detached.
	DeleteCategory(ctx context.Context, id string) error
}

// NoteRepository persists notes. A note body is only ever written as a
// complete [crypto.EncryptedRecord] in a single statement.
type NoteRepository interface {
	// CreateNote inserts a note. Its body may be empty or sealed.
	CreateNote(ctx context.Context, note models.Note) error
	GetNote(ctx context.Context, id string) (models.Note, error)
	// ListNotes returns the notes matching filter, newest first.
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	// SaveNoteBody replaces title, body and updated_at in one UPDATE.
	SaveNoteBody(ctx context.Context, id, title string, record crypto.EncryptedRecord, updatedAt time.Time) error
	MoveNote(ctx context.Context, id string, categoryID *string, updatedAt time.Time) error
	DeleteNote(ctx context.Context, id string) error
	// DeletePlaceholders removes never-sealed notes created before
	// createdBefore and returns their ids.
	DeletePlaceholders(ctx context.Context, createdBefore time.Time) ([]string, error)
}
