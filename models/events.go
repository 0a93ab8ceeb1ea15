package models

// EventKind names a change to notebook content.
type EventKind string

const (
	EventCategoryCreated EventKind = "category_created"
	EventCategoryRenamed EventKind = "category_renamed"
	EventCategoryMoved   EventKind = "category_moved"
	EventCategoryDeleted EventKind = "category_deleted"
	EventNoteCreated     EventKind = "note_created"
	EventNoteSaved       EventKind = "note_saved"
	EventNoteMoved       EventKind = "note_moved"
	EventNoteDeleted     EventKind = "note_deleted"
)

// Event is published after a change has been persisted. It never carries
// note content.
type Event struct {
	Kind EventKind
	// ID is the id of the affected note or category.
	ID string
}
