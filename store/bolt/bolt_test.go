package bolt

import (
	"path/filepath"
	"testing"

	"github.com/laito/laito/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestStore(t *testing.T, bucket string) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), bucket, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltStore_Conformance(t *testing.T) {
	storetest.Run(t, openTestStore(t, "sessions"))
}

func TestBoltStore_BucketsAreIsolated(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "shared.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := New(db, "sessions")
	reminders := New(db, "reminders")

	require.NoError(t, sessions.Put("key", []byte("session")))
	require.NoError(t, reminders.Put("key", []byte("reminder")))

	data, err := sessions.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("session"), data)

	data, err = reminders.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("reminder"), data)

	require.NoError(t, sessions.Delete("key"))
	_, err = reminders.Get("key")
	require.NoError(t, err)
}
