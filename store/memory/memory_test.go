package memory

import (
	"testing"

	"github.com/laito/laito/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Conformance(t *testing.T) {
	storetest.Run(t, New())
}

func TestMemoryStore_CopiesData(t *testing.T) {
	s := New()
	original := []byte("abc")
	require.NoError(t, s.Put("k", original))
	original[0] = 'z'

	data, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}
