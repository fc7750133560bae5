package auth

import (
	"fmt"
	"time"

	"github.com/laito/laito/config"
)

// Settings holds the configuration the service reads. Folders are not
// here: they belong to whoever constructs the store backends.
type Settings struct {
	// UsernameField is the user record field used as the login identifier.
	UsernameField string
	// PasswordField is the user record field holding the password hash.
	PasswordField string
	// CookieName names the cookie mirroring the session token.
	CookieName string
	// SessionTTL bounds both the cookie lifetime and server-side session
	// validity. 0 disables server-side expiry and makes the cookie a
	// browser-session cookie.
	SessionTTL time.Duration
	// ReminderTTL bounds reminder validity from creation.
	ReminderTTL time.Duration
	// ReminderPrefix marks reminder codes. It must contain a character
	// outside the token hex alphabet so the two can never collide.
	ReminderPrefix string
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	if s.UsernameField == "" {
		return fmt.Errorf("username field must not be empty")
	}
	if s.PasswordField == "" {
		return fmt.Errorf("password field must not be empty")
	}
	if !validReminderPrefix(s.ReminderPrefix) {
		return fmt.Errorf("reminder prefix %q must be non-empty and contain a non-hex character", s.ReminderPrefix)
	}
	return nil
}

// SettingsFromConfig resolves the recognized configuration keys into
// Settings. Required keys report config.ErrMissingKey.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	username, err := cfg.RequireString(config.KeyUsernameField)
	if err != nil {
		return Settings{}, err
	}
	password, err := cfg.RequireString(config.KeyPasswordField)
	if err != nil {
		return Settings{}, err
	}
	prefix, err := cfg.RequireString(config.KeyRemindersSuffix)
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		UsernameField:  username,
		PasswordField:  password,
		CookieName:     cfg.String(config.KeySessionsCookie),
		SessionTTL:     cfg.Duration(config.KeySessionsTTL),
		ReminderTTL:    cfg.Duration(config.KeyRemindersTTL),
		ReminderPrefix: prefix,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
