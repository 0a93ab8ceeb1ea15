// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id work factor used for every note. These are libsodium's
// OPSLIMIT_MODERATE / MEMLIMIT_MODERATE for crypto_pwhash. Changing them
// makes every existing record unopenable.
const (
	ModerateTime    uint32 = 3
	ModerateMemory  uint32 = 256 * 1024 // KiB, 256 MiB
	ModerateThreads uint8  = 1
)

// Argon2Params is an Argon2id work factor.
type Argon2Params struct {
	Time    uint32 // passes over memory
	Memory  uint32 // KiB
	Threads uint8
}

// ModerateParams returns the work factor production code uses.
func ModerateParams() Argon2Params {
	return Argon2Params{Time: ModerateTime, Memory: ModerateMemory, Threads: ModerateThreads}
}

// argon2id is the Argon2id implementation of [KeyDerivation].
type argon2id struct {
	params Argon2Params
}

// NewArgon2id returns the [KeyDerivation] with the moderate work factor.
func NewArgon2id() KeyDerivation {
	return &argon2id{params: ModerateParams()}
}

// NewArgon2idWithParams returns a [KeyDerivation] with a custom work factor.
// Records sealed with one parameter set can only be opened with the same set;
// outside tests use [NewArgon2id].
func NewArgon2idWithParams(params Argon2Params) KeyDerivation {
	return &argon2id{params: params}
}

// Derive implements [KeyDerivation]. argon2.IDKey panics instead of returning
// errors; the panic is recovered and reported as ErrKeyDerivationFailed.
func (a *argon2id) Derive(password, salt []byte) (key []byte, err error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrInvalidInputLength, len(salt), SaltSize)
	}
	if a.params.Time == 0 || a.params.Memory == 0 || a.params.Threads == 0 {
		return nil, fmt.Errorf("%w: invalid argon2id parameters", ErrKeyDerivationFailed)
	}

	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %v", ErrKeyDerivationFailed, r)
		}
	}()

	return argon2.IDKey(password, salt, a.params.Time, a.params.Memory, a.params.Threads, KeySize), nil
}
