package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/note_crypto_mock.go -package=mock

// KeyDerivation turns a password and a salt into a symmetric key.
//
// Implementations are pure: no state, no I/O, and identical inputs always
// produce identical keys, otherwise Open could not re-derive the key that
// Seal used.
type KeyDerivation interface {
	// Derive returns a KeySize-byte key for password and a SaltSize-byte salt.
	// A wrong password still yields a key; only tag verification can tell.
	// The caller owns the returned slice and should wipe it after use.
	Derive(password, salt []byte) ([]byte, error)
}

// AuthenticatedCipher encrypts and decrypts one payload under a key and a
// nonce, with a detached authentication tag. No associated data is bound.
type AuthenticatedCipher interface {
	// Seal encrypts plaintext. len(ciphertext) == len(plaintext) and
	// len(tag) == TagSize.
	Seal(plaintext, key, nonce []byte) (ciphertext, tag []byte, err error)

	// Open verifies tag and only then decrypts. On any mismatch it returns
	// ErrAuthenticationFailed and no plaintext.
	Open(ciphertext, tag, key, nonce []byte) ([]byte, error)
}

// NoteCrypto is the façade used by the note layer.
type NoteCrypto interface {
	// Seal encrypts a note body under password with a fresh salt and nonce.
	// The returned record fully replaces any previous record of the note.
	Seal(plaintext, password string) (EncryptedRecord, error)

	// Open re-derives the key from password and record.Salt, authenticates
	// and decrypts. Returns ErrEmptyRecord without deriving a key when the
	// record has no ciphertext.
	Open(record EncryptedRecord, password string) (string, error)

	// OpenBody is Open for a [SealedBody]; an empty body is ErrEmptyRecord.
	OpenBody(body SealedBody, password string) (string, error)
}
