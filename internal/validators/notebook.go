package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notebook/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the id of a category, note or draft.
	FieldID = "id"

	// FieldName targets a category name.
	FieldName = "name"

	// FieldParentID targets the parent reference of a category.
	FieldParentID = "parent_id"

	// FieldContent targets the plaintext of a note draft.
	FieldContent = "content"

	// FieldTitle targets an explicit note title.
	FieldTitle = "title"
)

// MaxNameLength is the longest category name or explicit note title, in runes.
const MaxNameLength = 255

// NotebookValidator implements Validator for models.Category and
// models.NoteDraft, by value or by pointer.
type NotebookValidator struct {
}

// NewNotebookValidator returns a Validator for notebook models.
func NewNotebookValidator() Validator {
	return &NotebookValidator{}
}

// Validate dispatches on the dynamic type of value. Without field names every
// field of the type is checked.
func (v *NotebookValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.NoteDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NotebookValidator) validateCategory(_ context.Context, category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(category.ID) == "" {
				return ErrInvalidID
			}
		case FieldName:
			if !isValidName(category.Name) {
				return ErrInvalidName
			}
		case FieldParentID:
			if category.ParentID == nil {
				continue
			}
			if strings.TrimSpace(*category.ParentID) == "" {
				return ErrInvalidID
			}
			if *category.ParentID == category.ID {
				return ErrSelfParent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotebookValidator) validateDraft(_ context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(draft.ID) == "" {
				return ErrInvalidID
			}
		case FieldContent:
			if !utf8.ValidString(draft.Content) {
				return ErrInvalidContent
			}
			if strings.TrimSpace(draft.Content) == "" {
				return ErrEmptyContent
			}
		case FieldTitle:
			// an empty title is derived from the content
			if draft.Title != "" && !isValidName(draft.Title) {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !utf8.ValidString(trimmed) {
		return false
	}
	return utf8.RuneCountInString(trimmed) <= MaxNameLength
}
