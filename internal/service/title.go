package service

import (
	"strings"

	"github.com/MKhiriev/go-notebook/models"
)

// MaxDerivedTitleLength caps a title taken from note content, in runes.
const MaxDerivedTitleLength = 50

// NewNoteTitle is the title of a placeholder note before its first save.
const NewNoteTitle = "New Note"

// ExtractTitle derives a note title from its first non-blank line, trimmed
// and cut to MaxDerivedTitleLength runes. Content without such a line gets
// models.UntitledNote.
func ExtractTitle(content string) string {
	for _, line := range strings.FieldsFunc(content, isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		runes := []rune(line)
		if len(runes) > MaxDerivedTitleLength {
			line = strings.TrimSpace(string(runes[:MaxDerivedTitleLength]))
		}
		return line
	}

	return models.UntitledNote
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// resolveTitle prefers an explicit title over one derived from content.
func resolveTitle(draft models.NoteDraft) string {
	if title := strings.TrimSpace(draft.Title); title != "" {
		return title
	}
	return ExtractTitle(draft.Content)
}
