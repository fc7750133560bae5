// Package config provides the key→value configuration source consumed by
// the auth service, backed by koanf (YAML file plus command-line flags).
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Recognized keys.
const (
	KeyUsernameField   = "auth.username"
	KeyPasswordField   = "auth.password"
	KeySessionsFolder  = "sessions.folder"
	KeySessionsTTL     = "sessions.ttl"
	KeySessionsCookie  = "sessions.cookie"
	KeyRemindersFolder = "reminders.folder"
	KeyRemindersTTL    = "reminders.ttl"
	KeyRemindersSuffix = "reminders.suffix"
	KeyUsersFile       = "users.file"
	KeyStorageBackend  = "storage.backend"
	KeyStoragePath     = "storage.path"
)

// ErrMissingKey is returned when a required configuration key is absent.
var ErrMissingKey = errors.New("missing configuration key")

// Config is a read-only view over loaded configuration.
type Config struct {
	k *koanf.Koanf
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyUsernameField:   "email",
		KeyPasswordField:   "password",
		KeySessionsTTL:     "24h",
		KeySessionsCookie:  "token",
		KeyRemindersTTL:    "1h",
		KeyRemindersSuffix: "r-",
		KeyUsersFile:       "users.json",
		KeyStorageBackend:  "file",
		KeyStoragePath:     "laito.db",
	}
}

// Load reads configuration from the YAML file at path (optional, ""
// skips it) and overlays values from flags (optional, nil skips it).
// Built-in defaults apply underneath both.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading config flags: %w", err)
		}
	}
	return &Config{k: k}, nil
}

// FromMap builds a Config from literal values, for tests and embedding.
func FromMap(values map[string]any) (*Config, error) {
	k := koanf.New(".")
	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	for key, value := range values {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return &Config{k: k}, nil
}

// String returns the string value for key, or "" if absent.
func (c *Config) String(key string) string {
	return c.k.String(key)
}

// Duration returns the duration value for key, or 0 if absent. Plain
// numbers are interpreted as seconds, matching the original flat-file
// deployment's config format.
func (c *Config) Duration(key string) time.Duration {
	if d, err := time.ParseDuration(c.k.String(key)); err == nil {
		return d
	}
	if secs := c.k.Int64(key); secs != 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// RequireString returns the string value for key, or ErrMissingKey if the
// key is absent or empty.
func (c *Config) RequireString(key string) (string, error) {
	if !c.k.Exists(key) || c.k.String(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return c.k.String(key), nil
}

// RequireDuration returns the duration value for key, or ErrMissingKey if
// the key is absent.
func (c *Config) RequireDuration(key string) (time.Duration, error) {
	if !c.k.Exists(key) {
		return 0, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return c.Duration(key), nil
}
