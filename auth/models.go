package auth

import (
	"time"

	"github.com/laito/laito/users"
)

// Session is the persisted association of a token with a sanitized user
// and creation time. The JSON field names match the on-disk layout of the
// flat-file deployment: {user, token, ctime}.
type Session struct {
	User      users.Record `json:"user"`
	Token     string       `json:"token"`
	CreatedAt int64        `json:"ctime"`
}

// Created returns the session creation time.
func (s Session) Created() time.Time {
	return time.Unix(s.CreatedAt, 0)
}

// expired reports whether the session is older than ttl at the given
// time. A ttl of 0 disables expiry.
func (s Session) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.After(s.Created().Add(ttl))
}

// Reminder is the persisted association of a reminder code with a target
// username and expiry. On-disk layout: {user, reminder, expires}. The user
// field holds only the configured username field, never a full record.
type Reminder struct {
	User      users.Record `json:"user"`
	Code      string       `json:"reminder"`
	ExpiresAt int64        `json:"expires"`
}

// Expires returns the reminder expiry time.
func (r Reminder) Expires() time.Time {
	return time.Unix(r.ExpiresAt, 0)
}

// Expired reports whether the reminder expiry is in the past. The
// original implementation compared the stored expiry against now+ttl,
// which never expires anything; the correct test is "now is after
// expires_at".
func (r Reminder) Expired(now time.Time) bool {
	return now.After(r.Expires())
}

// Login is the result of a successful Attempt: the sanitized user and the
// freshly issued session token.
type Login struct {
	User  users.Record `json:"user"`
	Token string       `json:"token"`
}

// LogoutResult reports which halves of a logout took effect. A bare
// boolean AND would swallow partial failures.
type LogoutResult struct {
	SessionDeleted bool
	CookieCleared  bool
}

// OK reports whether both halves of the logout succeeded.
func (r LogoutResult) OK() bool {
	return r.SessionDeleted && r.CookieCleared
}

// UpdateResult is the outcome of a password change.
type UpdateResult struct {
	Updated         bool
	ReminderDeleted bool
}
