// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals and opens note bodies under a per-note password.
//
// Every note body is stored as one [EncryptedRecord]:
//
//	salt       16 bytes  random per Seal, input to key derivation only
//	nonce      12 bytes  random per Seal, never reused
//	tag        16 bytes  AES-GCM authentication tag
//	ciphertext N bytes   N == len(plaintext)
//
// The key is derived from the password and the record's salt with Argon2id
// ([KeyDerivation]) and used once with AES-256-GCM ([AuthenticatedCipher]).
// [NoteCrypto] composes the two: Seal always draws a fresh salt and nonce, so
// re-saving a note with the same password still produces an unrelated record.
//
// Failures are reported as one of a closed set of kinds (see [Kind]). A wrong
// password and a tampered record are deliberately the same error,
// [ErrAuthenticationFailed].
//
// Passwords copied into byte slices and derived keys are wiped with memguard
// as soon as the operation that needed them returns.
package crypto
