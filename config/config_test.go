package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(nil)
	require.NoError(t, err)

	assert.Equal(t, "email", cfg.String(KeyUsernameField))
	assert.Equal(t, "password", cfg.String(KeyPasswordField))
	assert.Equal(t, "token", cfg.String(KeySessionsCookie))
	assert.Equal(t, "r-", cfg.String(KeyRemindersSuffix))
	assert.Equal(t, 24*time.Hour, cfg.Duration(KeySessionsTTL))
	assert.Equal(t, time.Hour, cfg.Duration(KeyRemindersTTL))
}

func TestFromMap_Overrides(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		KeyUsernameField: "login",
		KeySessionsTTL:   "30m",
	})
	require.NoError(t, err)
	assert.Equal(t, "login", cfg.String(KeyUsernameField))
	assert.Equal(t, 30*time.Minute, cfg.Duration(KeySessionsTTL))
}

func TestDuration_PlainSeconds(t *testing.T) {
	// Numeric values are seconds, matching the flat-file deployment.
	cfg, err := FromMap(map[string]any{KeyRemindersTTL: 3600})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Duration(KeyRemindersTTL))
}

func TestRequire(t *testing.T) {
	cfg, err := FromMap(nil)
	require.NoError(t, err)

	_, err = cfg.RequireString(KeySessionsFolder)
	require.ErrorIs(t, err, ErrMissingKey)

	folder, err := FromMap(map[string]any{KeySessionsFolder: "/tmp/sessions"})
	require.NoError(t, err)
	got, err := folder.RequireString(KeySessionsFolder)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sessions", got)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laito.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
auth:
  username: login
sessions:
  folder: /var/lib/laito/sessions
  ttl: 12h
reminders:
  suffix: reset_
`), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "login", cfg.String(KeyUsernameField))
	assert.Equal(t, "/var/lib/laito/sessions", cfg.String(KeySessionsFolder))
	assert.Equal(t, 12*time.Hour, cfg.Duration(KeySessionsTTL))
	assert.Equal(t, "reset_", cfg.String(KeyRemindersSuffix))
	// Untouched keys keep their defaults.
	assert.Equal(t, "password", cfg.String(KeyPasswordField))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}
