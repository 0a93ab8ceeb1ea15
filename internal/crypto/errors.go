// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Kind classifies every failure the package can report. The set is closed:
// callers can switch over it exhaustively.
type Kind uint8

const (
	// KindUnknown is returned by [KindOf] for errors that did not originate
	// in this package.
	KindUnknown Kind = iota
	// KindKeyDerivationFailed means the KDF could not complete (allocation
	// failure or invalid parameters). A retry may succeed; it is never automatic.
	KindKeyDerivationFailed
	// KindNonceGenerationFailed means the secure random source failed while
	// drawing a salt or nonce. Fatal to the current Seal call.
	KindNonceGenerationFailed
	// KindInvalidInputLength means a key, salt, nonce, tag or plaintext had
	// the wrong size. Indicates a caller or storage bug.
	KindInvalidInputLength
	// KindAuthenticationFailed means tag verification failed: wrong password
	// or damaged data, indistinguishably.
	KindAuthenticationFailed
	// KindEmptyRecord means Open was called on a body that was never sealed.
	KindEmptyRecord
	// KindDecodingFailed means authenticated bytes are not valid UTF-8 text.
	KindDecodingFailed
)

// Sentinel errors, one per [Kind]. Errors returned by this package wrap
// exactly one of them, so [errors.Is] can be used by callers.
var (
	ErrKeyDerivationFailed   = errors.New("key derivation failed")
	ErrNonceGenerationFailed = errors.New("secure random generation failed")
	ErrInvalidInputLength    = errors.New("invalid input length")
	ErrAuthenticationFailed  = errors.New("authentication failed")
	ErrEmptyRecord           = errors.New("record is empty")
	ErrDecodingFailed        = errors.New("decrypted content is not valid text")
)

var kinds = []struct {
	kind Kind
	err  error
}{
	{KindKeyDerivationFailed, ErrKeyDerivationFailed},
	{KindNonceGenerationFailed, ErrNonceGenerationFailed},
	{KindInvalidInputLength, ErrInvalidInputLength},
	{KindAuthenticationFailed, ErrAuthenticationFailed},
	{KindEmptyRecord, ErrEmptyRecord},
	{KindDecodingFailed, ErrDecodingFailed},
}

// KindOf reports the [Kind] of err, unwrapping as needed. It returns
// [KindUnknown] for nil and for errors from other packages.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// String returns the kind name in the form used in logs.
func (k Kind) String() string {
	switch k {
	case KindKeyDerivationFailed:
		return "key_derivation_failed"
	case KindNonceGenerationFailed:
		return "nonce_generation_failed"
	case KindInvalidInputLength:
		return "invalid_input_length"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindEmptyRecord:
		return "empty_record"
	case KindDecodingFailed:
		return "decoding_failed"
	default:
		return "unknown"
	}
}
