package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/laito/laito/store/memory"
	"github.com/laito/laito/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_PersistedLayout(t *testing.T) {
	records := memory.New()
	sessions := NewSessionStore(records)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := sessions.Put("tok-1", users.Record{"email": "alice"}, now)
	require.NoError(t, err)

	// On-disk field names are fixed: {user, token, ctime}.
	raw, err := records.Get("tok-1")
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "user")
	assert.Contains(t, decoded, "token")
	assert.Contains(t, decoded, "ctime")

	session, err := sessions.Get("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, now.Unix(), session.CreatedAt)
	assert.Equal(t, now.Unix(), session.Created().Unix())
}

func TestSessionStore_CorruptRecordIsAMiss(t *testing.T) {
	records := memory.New()
	sessions := NewSessionStore(records)

	require.NoError(t, records.Put("tok-1", []byte("not json")))
	_, err := sessions.Get("tok-1")
	require.Error(t, err)
}

func TestReminderStore_PersistedLayout(t *testing.T) {
	records := memory.New()
	reminders := NewReminderStore(records, time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := reminders.Put("r-abc", users.Record{"email": "alice"}, now)
	require.NoError(t, err)

	// On-disk field names are fixed: {user, reminder, expires}.
	raw, err := records.Get("r-abc")
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "user")
	assert.Contains(t, decoded, "reminder")
	assert.Contains(t, decoded, "expires")

	reminder, err := reminders.Get("r-abc")
	require.NoError(t, err)
	assert.Equal(t, "r-abc", reminder.Code)
	assert.Equal(t, now.Add(time.Hour).Unix(), reminder.ExpiresAt)

	// Expired only once now passes expires_at, never before.
	assert.False(t, reminder.Expired(now))
	assert.False(t, reminder.Expired(now.Add(time.Hour)))
	assert.True(t, reminder.Expired(now.Add(time.Hour+time.Second)))
}
