package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	require.NoError(t, err)
	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestRandomHex(t *testing.T) {
	s, err := RandomHex(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	decoded, err := HexDecode(s)
	require.NoError(t, err)
	assert.Len(t, decoded, 16)
}

func TestNormalize(t *testing.T) {
	// é composed and decomposed normalize identically.
	assert.Equal(t, Normalize("café"), Normalize("café"))
}
