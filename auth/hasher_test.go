package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("wrong", hash))
	assert.False(t, h.Verify("s3cret", "not-a-hash"))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	_, err := h.Hash("")
	require.Error(t, err)
}

func TestBcryptHasher_NormalizesUnicode(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	// "café" composed vs decomposed must verify the same.
	hash, err := h.Hash("café")
	require.NoError(t, err)
	assert.True(t, h.Verify("café", hash))
}

func TestDummyPasswordHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	// The dummy hash must be a parseable bcrypt hash that matches nothing
	// anyone would type.
	err := bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte("anything"))
	require.Error(t, err)
	assert.False(t, h.Verify("anything", dummyPasswordHash))
}
