// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCrypto_HelloVault(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the production argon2id work factor")
	}

	nc := NewNoteCrypto()

	record, err := nc.Seal("Hello, vault!", "correct-horse")
	require.NoError(t, err)

	assert.Len(t, record.Salt, 16)
	assert.Len(t, record.Nonce, 12)
	assert.Len(t, record.Tag, 16)
	assert.Len(t, record.Ciphertext, 13)

	got, err := nc.Open(record, "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Hello, vault!", got)

	_, err = nc.Open(record, "wrong-horse")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, KindAuthenticationFailed, KindOf(err))
}

func TestNoteCrypto_RoundTrip(t *testing.T) {
	nc := newTestNoteCrypto()

	tests := []struct {
		name      string
		plaintext string
		password  string
	}{
		{name: "ascii", plaintext: "shopping list: milk, eggs", password: "pw"},
		{name: "multiline", plaintext: "Title\n\nbody line 1\nbody line 2\n", password: "p@ss w0rd"},
		{name: "unicode", plaintext: "密码学笔记 — заметка 🔐", password: "пароль"},
		{name: "empty password", plaintext: "x", password: ""},
		{name: "large", plaintext: string(bytes.Repeat([]byte("0123456789"), 10_000)), password: "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := nc.Seal(tt.plaintext, tt.password)
			require.NoError(t, err)
			require.NoError(t, record.Validate())
			assert.Len(t, record.Ciphertext, len(tt.plaintext))

			got, err := nc.Open(record, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestNoteCrypto_SealRejectsEmptyPlaintext(t *testing.T) {
	kdf := &countingKDF{inner: NewArgon2idWithParams(fastParams)}
	nc := NewNoteCrypto(WithKeyDerivation(kdf))

	_, err := nc.Seal("", "pw")
	assert.ErrorIs(t, err, ErrInvalidInputLength)
	assert.Zero(t, kdf.calls.Load())
}

func TestNoteCrypto_WrongPassword(t *testing.T) {
	nc := newTestNoteCrypto()

	record, err := nc.Seal("top secret", "alpha")
	require.NoError(t, err)

	got, err := nc.Open(record, "beta")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, got)
}

func TestNoteCrypto_TamperDetection(t *testing.T) {
	nc := newTestNoteCrypto()

	record, err := nc.Seal("Hello, vault!", "correct-horse")
	require.NoError(t, err)

	flip := func(field func(*EncryptedRecord) []byte, name string) {
		n := len(field(&record))
		for i := 0; i < n*8; i++ {
			tampered := record.Clone()
			field(&tampered)[i/8] ^= 1 << (i % 8)

			got, err := nc.Open(tampered, "correct-horse")
			if !errors.Is(err, ErrAuthenticationFailed) {
				t.Fatalf("%s bit %d: err = %v, want ErrAuthenticationFailed", name, i, err)
			}
			if got != "" {
				t.Fatalf("%s bit %d: released plaintext %q", name, i, got)
			}
		}
	}

	flip(func(r *EncryptedRecord) []byte { return r.Ciphertext }, "ciphertext")
	flip(func(r *EncryptedRecord) []byte { return r.Tag }, "tag")
	flip(func(r *EncryptedRecord) []byte { return r.Nonce }, "nonce")
	flip(func(r *EncryptedRecord) []byte { return r.Salt }, "salt")
}

func TestNoteCrypto_FreshSaltAndNoncePerSeal(t *testing.T) {
	nc := newTestNoteCrypto()

	const trials = 64
	salts := make(map[string]struct{}, trials)
	nonces := make(map[string]struct{}, trials)
	ciphertexts := make(map[string]struct{}, trials)
	tags := make(map[string]struct{}, trials)

	for i := 0; i < trials; i++ {
		record, err := nc.Seal("same plaintext", "same password")
		require.NoError(t, err)

		salts[string(record.Salt)] = struct{}{}
		nonces[string(record.Nonce)] = struct{}{}
		ciphertexts[string(record.Ciphertext)] = struct{}{}
		tags[string(record.Tag)] = struct{}{}
	}

	assert.Len(t, salts, trials, "salt collision")
	assert.Len(t, nonces, trials, "nonce collision")
	assert.Len(t, ciphertexts, trials, "ciphertext collision")
	assert.Len(t, tags, trials, "tag collision")
}

func TestNoteCrypto_EmptyRecordSkipsDerivation(t *testing.T) {
	kdf := &countingKDF{inner: NewArgon2idWithParams(fastParams)}
	nc := NewNoteCrypto(WithKeyDerivation(kdf))

	tests := []struct {
		name   string
		record EncryptedRecord
	}{
		{name: "zero value", record: EncryptedRecord{}},
		{
			name: "salt nonce tag but no ciphertext",
			record: EncryptedRecord{
				Salt:       make([]byte, SaltSize),
				Nonce:      make([]byte, NonceSize),
				Tag:        make([]byte, TagSize),
				Ciphertext: []byte{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nc.Open(tt.record, "pw")
			assert.ErrorIs(t, err, ErrEmptyRecord)
		})
	}

	_, err := nc.OpenBody(EmptyBody(), "pw")
	assert.ErrorIs(t, err, ErrEmptyRecord)

	assert.Zero(t, kdf.calls.Load(), "key derivation must not run for an empty record")
}

func TestNoteCrypto_OpenRejectsMalformedRecordBeforeDerivation(t *testing.T) {
	kdf := &countingKDF{inner: NewArgon2idWithParams(fastParams)}
	nc := NewNoteCrypto(WithKeyDerivation(kdf))

	record, err := nc.Seal("body", "pw")
	require.NoError(t, err)
	calls := kdf.calls.Load()

	truncatedTag := record.Clone()
	truncatedTag.Tag = truncatedTag.Tag[:TagSize-1]
	_, err = nc.Open(truncatedTag, "pw")
	assert.ErrorIs(t, err, ErrInvalidInputLength)

	longNonce := record.Clone()
	longNonce.Nonce = append(longNonce.Nonce, 0)
	_, err = nc.Open(longNonce, "pw")
	assert.ErrorIs(t, err, ErrInvalidInputLength)

	shortSalt := record.Clone()
	shortSalt.Salt = shortSalt.Salt[:8]
	_, err = nc.Open(shortSalt, "pw")
	assert.ErrorIs(t, err, ErrInvalidInputLength)

	assert.Equal(t, calls, kdf.calls.Load())
}

func TestNoteCrypto_RandomnessFailure(t *testing.T) {
	t.Run("salt", func(t *testing.T) {
		kdf := &countingKDF{inner: NewArgon2idWithParams(fastParams)}
		nc := NewNoteCrypto(WithKeyDerivation(kdf), WithRandom(failingReader{}))

		_, err := nc.Seal("body", "pw")
		assert.ErrorIs(t, err, ErrNonceGenerationFailed)
		assert.Zero(t, kdf.calls.Load())
	})

	t.Run("nonce", func(t *testing.T) {
		// Enough bytes for the salt only.
		nc := newTestNoteCrypto(WithRandom(bytes.NewReader(make([]byte, SaltSize))))

		record, err := nc.Seal("body", "pw")
		assert.ErrorIs(t, err, ErrNonceGenerationFailed)
		assert.Equal(t, KindNonceGenerationFailed, KindOf(err))
		assert.Empty(t, record.Ciphertext)
	})
}

func TestNoteCrypto_KeyDerivationFailurePropagates(t *testing.T) {
	nc := NewNoteCrypto(WithKeyDerivation(NewArgon2idWithParams(Argon2Params{})))

	_, err := nc.Seal("body", "pw")
	assert.Equal(t, KindKeyDerivationFailed, KindOf(err))

	good := newTestNoteCrypto()
	record, err := good.Seal("body", "pw")
	require.NoError(t, err)

	_, err = nc.Open(record, "pw")
	assert.Equal(t, KindKeyDerivationFailed, KindOf(err))
}

func TestNoteCrypto_DecodingFailed(t *testing.T) {
	kdf := NewArgon2idWithParams(fastParams)
	aead := NewAESGCM()

	salt := bytes.Repeat([]byte{0x11}, SaltSize)
	nonce := bytes.Repeat([]byte{0x22}, NonceSize)

	key, err := kdf.Derive([]byte("pw"), salt)
	require.NoError(t, err)

	ciphertext, tag, err := aead.Seal([]byte{0xFF, 0xFE, 0xFD}, key, nonce)
	require.NoError(t, err)

	nc := NewNoteCrypto(WithKeyDerivation(kdf), WithCipher(aead))
	got, err := nc.Open(EncryptedRecord{Salt: salt, Nonce: nonce, Ciphertext: ciphertext, Tag: tag}, "pw")

	assert.ErrorIs(t, err, ErrDecodingFailed)
	assert.Empty(t, got)
}

func TestNoteCrypto_OpenBody(t *testing.T) {
	nc := newTestNoteCrypto()

	record, err := nc.Seal("sealed body", "pw")
	require.NoError(t, err)

	body, err := SealedWith(record)
	require.NoError(t, err)

	got, err := nc.OpenBody(body, "pw")
	require.NoError(t, err)
	assert.Equal(t, "sealed body", got)
}
