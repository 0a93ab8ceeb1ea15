// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/awnumar/memguard"
)

// noteCrypto is the private implementation of [NoteCrypto].
type noteCrypto struct {
	kdf    KeyDerivation
	cipher AuthenticatedCipher
	random io.Reader
}

// Option configures [NewNoteCrypto].
type Option func(*noteCrypto)

// WithKeyDerivation replaces the Argon2id key derivation.
func WithKeyDerivation(kdf KeyDerivation) Option {
	return func(n *noteCrypto) { n.kdf = kdf }
}

// WithCipher replaces the AES-256-GCM cipher.
func WithCipher(c AuthenticatedCipher) Option {
	return func(n *noteCrypto) { n.cipher = c }
}

// WithRandom replaces crypto/rand.Reader as the source of salts and nonces.
// The reader must be cryptographically secure.
func WithRandom(r io.Reader) Option {
	return func(n *noteCrypto) { n.random = r }
}

// NewNoteCrypto constructs a [NoteCrypto] using Argon2id with the moderate
// work factor, AES-256-GCM and crypto/rand unless overridden by opts.
func NewNoteCrypto(opts ...Option) NoteCrypto {
	n := &noteCrypto{
		kdf:    NewArgon2id(),
		cipher: NewAESGCM(),
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Seal implements [NoteCrypto].
//
// An empty plaintext is rejected with ErrInvalidInputLength: its ciphertext
// would be zero-length, which storage treats as "never sealed".
func (n *noteCrypto) Seal(plaintext, password string) (EncryptedRecord, error) {
	if len(plaintext) == 0 {
		return EncryptedRecord{}, fmt.Errorf("%w: plaintext is empty", ErrInvalidInputLength)
	}

	salt, err := n.read(SaltSize)
	if err != nil {
		return EncryptedRecord{}, fmt.Errorf("%w: salt: %w", ErrNonceGenerationFailed, err)
	}

	key, err := n.derive(password, salt)
	if err != nil {
		return EncryptedRecord{}, err
	}
	defer memguard.WipeBytes(key)

	// Drawn after derivation and never substituted on failure.
	nonce, err := n.read(NonceSize)
	if err != nil {
		return EncryptedRecord{}, fmt.Errorf("%w: nonce: %w", ErrNonceGenerationFailed, err)
	}

	body := []byte(plaintext)
	defer memguard.WipeBytes(body)

	ciphertext, tag, err := n.cipher.Seal(body, key, nonce)
	if err != nil {
		return EncryptedRecord{}, err
	}

	return EncryptedRecord{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
		Tag:        tag,
	}, nil
}

// Open implements [NoteCrypto].
func (n *noteCrypto) Open(record EncryptedRecord, password string) (string, error) {
	// Validate reports an empty ciphertext as ErrEmptyRecord, so no key is
	// derived for a note that was never sealed.
	if err := record.Validate(); err != nil {
		return "", err
	}

	key, err := n.derive(password, record.Salt)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(key)

	plaintext, err := n.cipher.Open(record.Ciphertext, record.Tag, key, record.Nonce)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(plaintext)

	if !utf8.Valid(plaintext) {
		return "", ErrDecodingFailed
	}

	return string(plaintext), nil
}

// OpenBody implements [NoteCrypto].
func (n *noteCrypto) OpenBody(body SealedBody, password string) (string, error) {
	record, ok := body.Record()
	if !ok {
		return "", ErrEmptyRecord
	}
	return n.Open(record, password)
}

func (n *noteCrypto) derive(password string, salt []byte) ([]byte, error) {
	pw := []byte(password)
	defer memguard.WipeBytes(pw)

	key, err := n.kdf.Derive(pw, salt)
	if err != nil {
		return nil, err
	}
	if len(key) != KeySize {
		memguard.WipeBytes(key)
		return nil, fmt.Errorf("%w: derived key is %d bytes, want %d", ErrKeyDerivationFailed, len(key), KeySize)
	}
	return key, nil
}

func (n *noteCrypto) read(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(n.random, b); err != nil {
		return nil, err
	}
	return b, nil
}
