// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesGCM is the AES-256-GCM implementation of [AuthenticatedCipher]. The tag
// is kept detached from the ciphertext so the record can store it as its own
// field.
type aesGCM struct{}

// NewAESGCM returns the AES-256-GCM [AuthenticatedCipher].
func NewAESGCM() AuthenticatedCipher {
	return aesGCM{}
}

// Seal implements [AuthenticatedCipher]. Key and nonce sizes are checked
// before any work is done.
func (aesGCM) Seal(plaintext, key, nonce []byte) ([]byte, []byte, error) {
	if err := checkLen("key", key, KeySize); err != nil {
		return nil, nil, err
	}
	if err := checkLen("nonce", nonce, NonceSize); err != nil {
		return nil, nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	// gcm.Seal returns ciphertext ‖ tag.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	return sealed[:split:split], sealed[split:], nil
}

// Open implements [AuthenticatedCipher]. cipher.AEAD.Open verifies the tag
// before decrypting, so a mismatch never exposes plaintext.
func (aesGCM) Open(ciphertext, tag, key, nonce []byte) ([]byte, error) {
	if err := checkLen("key", key, KeySize); err != nil {
		return nil, err
	}
	if err := checkLen("nonce", nonce, NonceSize); err != nil {
		return nil, err
	}
	if err := checkLen("tag", tag, TagSize); err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		// The cause carries no information the caller may act on.
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrInvalidInputLength, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
