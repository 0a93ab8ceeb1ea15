// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"fmt"
)

// Field sizes of an [EncryptedRecord], in bytes.
const (
	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16
	KeySize   = 32 // AES-256
)

// EncryptedRecord is the at-rest form of one note body. The four fields are
// one unit: they are produced together by [NoteCrypto.Seal] and must be
// persisted and handed back to Open together.
type EncryptedRecord struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// Validate checks the exact field sizes. A zero-length ciphertext is reported
// as [ErrEmptyRecord]; any other size mismatch as [ErrInvalidInputLength].
func (r EncryptedRecord) Validate() error {
	if len(r.Ciphertext) == 0 {
		return ErrEmptyRecord
	}
	if err := checkLen("salt", r.Salt, SaltSize); err != nil {
		return err
	}
	if err := checkLen("nonce", r.Nonce, NonceSize); err != nil {
		return err
	}
	return checkLen("tag", r.Tag, TagSize)
}

// Clone returns a deep copy so the record can outlive the buffers it was
// scanned from.
func (r EncryptedRecord) Clone() EncryptedRecord {
	return EncryptedRecord{
		Salt:       bytes.Clone(r.Salt),
		Nonce:      bytes.Clone(r.Nonce),
		Ciphertext: bytes.Clone(r.Ciphertext),
		Tag:        bytes.Clone(r.Tag),
	}
}

// Equal reports whether both records hold identical bytes in every field.
func (r EncryptedRecord) Equal(other EncryptedRecord) bool {
	return bytes.Equal(r.Salt, other.Salt) &&
		bytes.Equal(r.Nonce, other.Nonce) &&
		bytes.Equal(r.Ciphertext, other.Ciphertext) &&
		bytes.Equal(r.Tag, other.Tag)
}

func checkLen(field string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrInvalidInputLength, field, len(b), want)
	}
	return nil
}

// BodyState is the state of a note body.
type BodyState uint8

const (
	// BodyEmpty: the note has never been sealed.
	BodyEmpty BodyState = iota
	// BodySealed: the note holds a valid [EncryptedRecord].
	BodySealed
)

func (s BodyState) String() string {
	if s == BodySealed {
		return "sealed"
	}
	return "empty"
}

// SealedBody is either Empty (the zero value) or Sealed with a validated
// record. It replaces independently nullable salt/nonce/tag/ciphertext
// fields, so a body with a salt but no tag cannot be represented.
type SealedBody struct {
	record *EncryptedRecord
}

// EmptyBody returns the body of a note that was never sealed.
func EmptyBody() SealedBody {
	return SealedBody{}
}

// SealedWith validates r and returns a Sealed body holding a copy of it.
func SealedWith(r EncryptedRecord) (SealedBody, error) {
	if err := r.Validate(); err != nil {
		return SealedBody{}, err
	}
	c := r.Clone()
	return SealedBody{record: &c}, nil
}

// State reports whether the body is empty or sealed.
func (b SealedBody) State() BodyState {
	if b.record == nil {
		return BodyEmpty
	}
	return BodySealed
}

// IsSealed is shorthand for State() == BodySealed.
func (b SealedBody) IsSealed() bool {
	return b.record != nil
}

// Record returns a copy of the sealed record, or false for an empty body.
func (b SealedBody) Record() (EncryptedRecord, bool) {
	if b.record == nil {
		return EncryptedRecord{}, false
	}
	return b.record.Clone(), true
}
