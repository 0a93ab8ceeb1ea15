package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (models.Category, error) {
	var (
		category models.Category
		parentID sql.NullString
	)

	if err := row.Scan(&category.ID, &category.Name, &parentID, &category.CreatedAt); err != nil {
		return models.Category{}, err
	}

	category.ParentID = nullableString(parentID)
	return category, nil
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note                         models.Note
		categoryID                   sql.NullString
		salt, nonce, tag, ciphertext []byte
	)

	err := row.Scan(
		&note.ID,
		&categoryID,
		&note.Title,
		&note.CreatedAt,
		&note.UpdatedAt,
		&salt,
		&nonce,
		&tag,
		&ciphertext,
	)
	if err != nil {
		return models.Note{}, err
	}

	body, err := bodyFromColumns(salt, nonce, tag, ciphertext)
	if err != nil {
		return models.Note{}, fmt.Errorf("note %s: %w", note.ID, err)
	}

	note.CategoryID = nullableString(categoryID)
	note.Body = body
	return note, nil
}

// bodyFromColumns rebuilds a body from its four columns: all NULL is Empty,
// all present and well-sized is Sealed, anything else is
// [ErrInconsistentRecord].
func bodyFromColumns(salt, nonce, tag, ciphertext []byte) (crypto.SealedBody, error) {
	if salt == nil && nonce == nil && tag == nil && ciphertext == nil {
		return crypto.EmptyBody(), nil
	}
	if salt == nil || nonce == nil || tag == nil || ciphertext == nil {
		return crypto.SealedBody{}, fmt.Errorf("%w: partially empty body columns", ErrInconsistentRecord)
	}

	body, err := crypto.SealedWith(crypto.EncryptedRecord{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
		Tag:        tag,
	})
	if err != nil {
		return crypto.SealedBody{}, fmt.Errorf("%w: %w", ErrInconsistentRecord, err)
	}
	return body, nil
}

// bodyColumns returns the values bound to salt, nonce, tag and ciphertext.
// An empty body binds four NULLs.
func bodyColumns(body crypto.SealedBody) (salt, nonce, tag, ciphertext any) {
	record, ok := body.Record()
	if !ok {
		return nil, nil, nil, nil
	}
	return record.Salt, record.Nonce, record.Tag, record.Ciphertext
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullString binds a nil pointer as NULL.
func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
