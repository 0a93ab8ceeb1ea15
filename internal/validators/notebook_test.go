// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewNotebookValidator(t *testing.T) {
	v := NewNotebookValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNotebookValidator()
	ctx := context.Background()

	category := models.Category{ID: "c1", Name: "Work"}
	draft := models.NoteDraft{ID: "n1", Content: "hello"}

	assert.NoError(t, v.Validate(ctx, category))
	assert.NoError(t, v.Validate(ctx, &category))
	assert.NoError(t, v.Validate(ctx, draft))
	assert.NoError(t, v.Validate(ctx, &draft))
	assert.ErrorIs(t, v.Validate(ctx, "plain string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{}), ErrUnsupportedType)
}

func TestValidate_Category(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		fields   []string
		wantErr  error
	}{
		{name: "valid root", category: models.Category{ID: "c1", Name: "Work"}},
		{name: "valid child", category: models.Category{ID: "c2", Name: "Ideas", ParentID: strPtr("c1")}},
		{name: "missing id", category: models.Category{Name: "Work"}, wantErr: ErrInvalidID},
		{name: "blank name", category: models.Category{ID: "c1", Name: "  \t"}, wantErr: ErrInvalidName},
		{name: "name too long", category: models.Category{ID: "c1", Name: strings.Repeat("й", MaxNameLength+1)}, wantErr: ErrInvalidName},
		{name: "name at limit", category: models.Category{ID: "c1", Name: strings.Repeat("й", MaxNameLength)}},
		{name: "invalid utf-8 name", category: models.Category{ID: "c1", Name: "\xff\xfe"}, wantErr: ErrInvalidName},
		{name: "empty parent id", category: models.Category{ID: "c1", Name: "Work", ParentID: strPtr(" ")}, wantErr: ErrInvalidID},
		{name: "self parent", category: models.Category{ID: "c1", Name: "Work", ParentID: strPtr("c1")}, wantErr: ErrSelfParent},
		{name: "name only skips id", category: models.Category{Name: "Work"}, fields: []string{FieldName}},
		{name: "unknown field", category: models.Category{ID: "c1", Name: "Work"}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewNotebookValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.category, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NoteDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.NoteDraft
		fields  []string
		wantErr error
	}{
		{name: "valid", draft: models.NoteDraft{ID: "n1", Content: "Hello, vault!"}},
		{name: "valid with title", draft: models.NoteDraft{ID: "n1", Content: "body", Title: "Groceries"}},
		{name: "missing id", draft: models.NoteDraft{Content: "body"}, wantErr: ErrInvalidID},
		{name: "empty content", draft: models.NoteDraft{ID: "n1"}, wantErr: ErrEmptyContent},
		{name: "whitespace content", draft: models.NoteDraft{ID: "n1", Content: " \n\t\n "}, wantErr: ErrEmptyContent},
		{name: "invalid utf-8 content", draft: models.NoteDraft{ID: "n1", Content: "ok\xff"}, wantErr: ErrInvalidContent},
		{name: "blank explicit title", draft: models.NoteDraft{ID: "n1", Content: "body", Title: "   "}, wantErr: ErrInvalidTitle},
		{name: "long explicit title", draft: models.NoteDraft{ID: "n1", Content: "body", Title: strings.Repeat("t", MaxNameLength+1)}, wantErr: ErrInvalidTitle},
		{name: "content only", draft: models.NoteDraft{Content: "body"}, fields: []string{FieldContent}},
		{name: "unknown field", draft: models.NoteDraft{ID: "n1", Content: "body"}, fields: []string{FieldName}, wantErr: ErrUnknownField},
	}

	v := NewNotebookValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.draft, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
