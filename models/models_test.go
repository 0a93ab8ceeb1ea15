package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notebook/internal/crypto"
)

func TestNote_IsPlaceholder(t *testing.T) {
	var n Note
	assert.True(t, n.IsPlaceholder())

	body, err := crypto.SealedWith(crypto.EncryptedRecord{
		Salt:       bytes.Repeat([]byte{1}, crypto.SaltSize),
		Nonce:      bytes.Repeat([]byte{2}, crypto.NonceSize),
		Ciphertext: []byte("x"),
		Tag:        bytes.Repeat([]byte{3}, crypto.TagSize),
	})
	require.NoError(t, err)

	n.Body = body
	assert.False(t, n.IsPlaceholder())
}

func TestCategory_IsRoot(t *testing.T) {
	parent := "p"
	assert.True(t, Category{ID: "a"}.IsRoot())
	assert.False(t, Category{ID: "b", ParentID: &parent}.IsRoot())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
