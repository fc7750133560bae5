package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/laito/laito/store/file"
	"github.com/laito/laito/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestService_FlatFileEndToEnd runs the full lifecycle against the
// file-per-record backends the module was built around.
func TestService_FlatFileEndToEnd(t *testing.T) {
	ctx := context.Background()
	sessionsDir := filepath.Join(t.TempDir(), "sessions")
	remindersDir := filepath.Join(t.TempDir(), "reminders")

	sessionRecords, err := file.New(sessionsDir)
	require.NoError(t, err)
	reminderRecords, err := file.New(remindersDir)
	require.NoError(t, err)

	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct-pw")
	require.NoError(t, err)

	directory := users.NewFileDirectory(filepath.Join(t.TempDir(), "users.json"))
	_, err = directory.Add(ctx, users.Record{"email": "alice", "password": hash})
	require.NoError(t, err)

	notifier := &capturingNotifier{}
	svc, err := New(directory,
		NewSessionStore(sessionRecords),
		NewReminderStore(reminderRecords, time.Hour),
		testSettings(),
		WithHasher(hasher),
		WithNotifier(notifier),
	)
	require.NoError(t, err)

	login, err := svc.Attempt(ctx, "alice", "correct-pw", false)
	require.NoError(t, err)

	// One file per session at <sessions_folder>/<token>.json.
	_, err = os.Stat(filepath.Join(sessionsDir, login.Token+".json"))
	require.NoError(t, err)

	session, err := svc.Info(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.User["email"])
	assert.NotContains(t, session.User, "password")

	created, err := svc.RemindPassword(ctx, "alice")
	require.NoError(t, err)
	require.True(t, created)
	code := notifier.codes[0]
	_, err = os.Stat(filepath.Join(remindersDir, code+".json"))
	require.NoError(t, err)

	result, err := svc.ChangePassword(ctx, "alice", code, "new-pw")
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.True(t, result.ReminderDeleted)
	_, err = os.Stat(filepath.Join(remindersDir, code+".json"))
	assert.True(t, os.IsNotExist(err), "used reminder file must be gone")

	logout, err := svc.Logout(ctx, login.Token)
	require.NoError(t, err)
	assert.True(t, logout.OK())
	_, err = os.Stat(filepath.Join(sessionsDir, login.Token+".json"))
	assert.True(t, os.IsNotExist(err), "session file must be gone after logout")

	// New password works, and directory changes survived on disk.
	_, err = svc.Attempt(ctx, "alice", "new-pw", false)
	require.NoError(t, err)
}
