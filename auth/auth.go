// Package auth implements the token/session/reminder lifecycle: login,
// logout, session introspection, password-reset request, and password
// change, over pluggable credential and record stores.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/laito/laito/store"
	"github.com/laito/laito/users"
)

// Service orchestrates authentication over its collaborators. It caches
// nothing between calls: the stores are the single source of truth.
type Service struct {
	users     users.Directory
	sessions  *SessionStore
	reminders *ReminderStore
	settings  Settings

	hasher   PasswordHasher
	cookies  CookieWriter
	notifier Notifier
	tokens   TokenSource
	now      func() time.Time
	log      *slog.Logger
}

// New creates a Service with explicit dependencies. The stores must
// already be bound to their backends; options override the default
// hasher, cookie writer, notifier, token source, clock, and logger.
func New(directory users.Directory, sessions *SessionStore, reminders *ReminderStore, settings Settings, opts ...Option) (*Service, error) {
	if directory == nil {
		return nil, fmt.Errorf("user directory must not be nil")
	}
	if sessions == nil || reminders == nil {
		return nil, fmt.Errorf("session and reminder stores must not be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := &Service{
		users:     directory,
		sessions:  sessions,
		reminders: reminders,
		settings:  settings,
		hasher:    NewBcryptHasher(0),
		cookies:   NopCookies{},
		tokens:    randomTokens{},
		now:       time.Now,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(s.log)
	}
	return s, nil
}

// Attempt authenticates a username/password pair. On success it issues a
// session token, persists the session with a sanitized user, and returns
// both. With remember set, the transport layer is told to set the session
// cookie. Unknown user and wrong password both come back as
// ErrInvalidCredentials.
func (s *Service) Attempt(ctx context.Context, username, password string, remember bool) (Login, error) {
	if err := ctx.Err(); err != nil {
		return Login{}, err
	}

	user, err := s.users.Find(ctx, s.settings.UsernameField, username)
	if errors.Is(err, users.ErrNotFound) {
		// Burn a verification against a dummy hash so the miss costs the
		// same as a wrong password.
		s.hasher.Verify(password, dummyPasswordHash)
		return Login{}, ErrInvalidCredentials
	}
	if err != nil {
		return Login{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if !s.hasher.Verify(password, user[s.settings.PasswordField]) {
		return Login{}, ErrInvalidCredentials
	}

	token, err := s.tokens.NewToken()
	if err != nil {
		return Login{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	sanitized := user.Sanitized(s.settings.PasswordField)
	if _, err := s.sessions.Put(token, sanitized, s.now()); err != nil {
		return Login{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if remember {
		var expires time.Time
		if s.settings.SessionTTL > 0 {
			expires = s.now().Add(s.settings.SessionTTL)
		}
		if err := s.cookies.Set(s.settings.CookieName, token, expires); err != nil {
			// Login itself succeeded; the client just won't be remembered.
			s.log.WarnContext(ctx, "setting session cookie failed",
				slog.String("error", err.Error()))
		}
	}

	return Login{User: sanitized, Token: token}, nil
}

// Info returns the session for token. It has no side effects beyond
// lazily deleting a session past its TTL, which then reports
// ErrInvalidToken like any other miss.
func (s *Service) Info(ctx context.Context, token string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	return s.session(ctx, token)
}

// Logout deletes the session for token and tells the transport layer to
// clear the cookie. Partial failure is reported in the result rather than
// collapsed into one boolean.
func (s *Service) Logout(ctx context.Context, token string) (LogoutResult, error) {
	if err := ctx.Err(); err != nil {
		return LogoutResult{}, err
	}
	if _, err := s.session(ctx, token); err != nil {
		return LogoutResult{}, err
	}

	var result LogoutResult
	var firstErr error
	if err := s.sessions.Delete(token); err != nil {
		firstErr = fmt.Errorf("%w: %w", ErrStorage, err)
	} else {
		result.SessionDeleted = true
	}
	if err := s.cookies.Clear(s.settings.CookieName); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("clearing cookie: %w", err)
		}
	} else {
		result.CookieCleared = true
	}
	return result, firstErr
}

// RemindPassword creates a password-reset reminder for username and hands
// the code to the notifier. An unknown username returns false without an
// error and persists nothing, leaking existence only as a boolean.
func (s *Service) RemindPassword(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := s.users.Find(ctx, s.settings.UsernameField, username)
	if errors.Is(err, users.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	code, err := s.newReminderCode()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	target := users.Record{s.settings.UsernameField: username}
	if _, err := s.reminders.Put(code, target, s.now()); err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err := s.notifier.ReminderCreated(ctx, username, code); err != nil {
		// The reminder is persisted and valid; delivery is best effort.
		s.log.WarnContext(ctx, "reminder notification failed",
			slog.String("username", username),
			slog.String("error", err.Error()))
	}
	return true, nil
}

// ChangePassword updates the password of username, authorized either by a
// live session token or by an unexpired reminder code (told apart by the
// reminder prefix). A reminder is deleted after use.
func (s *Service) ChangePassword(ctx context.Context, username, credential, newPassword string) (UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}

	isReminder := s.isReminderCode(credential)
	if isReminder {
		reminder, err := s.reminders.Get(credential)
		if errors.Is(err, store.ErrNotFound) {
			return UpdateResult{}, ErrInvalidReminder
		}
		if err != nil {
			return UpdateResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		if reminder.Expired(s.now()) {
			if err := s.reminders.Delete(credential); err != nil && !errors.Is(err, store.ErrNotFound) {
				s.log.WarnContext(ctx, "deleting expired reminder failed",
					slog.String("error", err.Error()))
			}
			return UpdateResult{}, ErrReminderExpired
		}
		// The reminder authorizes only the user it was issued for.
		if reminder.User[s.settings.UsernameField] != username {
			return UpdateResult{}, ErrInvalidReminder
		}
	} else {
		session, err := s.session(ctx, credential)
		if err != nil {
			return UpdateResult{}, err
		}
		if session.User[s.settings.UsernameField] != username {
			return UpdateResult{}, ErrInvalidToken
		}
	}

	user, err := s.users.Find(ctx, s.settings.UsernameField, username)
	if errors.Is(err, users.ErrNotFound) {
		return UpdateResult{}, ErrUserNotFound
	}
	if err != nil {
		return UpdateResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return UpdateResult{}, err
	}
	if err := s.users.SetField(ctx, user.ID(), s.settings.PasswordField, hash); err != nil {
		return UpdateResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	result := UpdateResult{Updated: true}
	if isReminder {
		if err := s.reminders.Delete(credential); err != nil && !errors.Is(err, store.ErrNotFound) {
			s.log.WarnContext(ctx, "deleting used reminder failed",
				slog.String("error", err.Error()))
		} else {
			result.ReminderDeleted = true
		}
	}
	return result, nil
}

// session loads and validates the session for token, enforcing the
// configured TTL lazily: an expired record is deleted and reported as
// ErrInvalidToken.
func (s *Service) session(ctx context.Context, token string) (Session, error) {
	session, err := s.sessions.Get(token)
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrInvalidToken
	}
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if session.expired(s.now(), s.settings.SessionTTL) {
		if err := s.sessions.Delete(token); err != nil && !errors.Is(err, store.ErrNotFound) {
			s.log.WarnContext(ctx, "deleting expired session failed",
				slog.String("error", err.Error()))
		}
		return Session{}, ErrInvalidToken
	}
	return session, nil
}
