package crypto

import (
	"errors"
	"sync/atomic"
)

// fastParams keeps tests quick; production always uses ModerateParams.
var fastParams = Argon2Params{Time: 1, Memory: 64, Threads: 1}

func newTestNoteCrypto(opts ...Option) NoteCrypto {
	base := []Option{WithKeyDerivation(NewArgon2idWithParams(fastParams))}
	return NewNoteCrypto(append(base, opts...)...)
}

// countingKDF records how many times Derive was called.
type countingKDF struct {
	inner KeyDerivation
	calls atomic.Int32
}

func (c *countingKDF) Derive(password, salt []byte) ([]byte, error) {
	c.calls.Add(1)
	return c.inner.Derive(password, salt)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}
