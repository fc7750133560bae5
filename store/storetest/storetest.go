// Package storetest provides a conformance suite run against every
// store.Records implementation.
package storetest

import (
	"testing"

	"github.com/laito/laito/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises the store.Records contract against the given
// implementation.
func Run(t *testing.T, records store.Records) {
	t.Helper()

	t.Run("PutAndGet", func(t *testing.T) {
		require.NoError(t, records.Put("tok-1", []byte(`{"a":1}`)))
		data, err := records.Get("tok-1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), data)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := records.Get("no-such-key")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, records.Put("tok-ow", []byte("v1")))
		require.NoError(t, records.Put("tok-ow", []byte("v2")))
		data, err := records.Get("tok-ow")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, records.Put("tok-del", []byte("x")))
		require.NoError(t, records.Delete("tok-del"))
		_, err := records.Get("tok-del")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		err := records.Delete("never-existed")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, records.Put("list-a", []byte("a")))
		require.NoError(t, records.Put("list-b", []byte("b")))
		keys, err := records.List()
		require.NoError(t, err)
		assert.Contains(t, keys, "list-a")
		assert.Contains(t, keys, "list-b")
	})

	t.Run("RejectsHostileKeys", func(t *testing.T) {
		for _, key := range []string{"", "../escape", "a/b", "a\\b", ".", "..", "a.json"} {
			err := records.Put(key, []byte("x"))
			assert.ErrorIs(t, err, store.ErrInvalidKey, "key %q", key)
		}
	})
}
