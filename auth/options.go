package auth

import (
	"log/slog"
	"time"
)

// Option configures a Service.
type Option func(*Service)

// WithHasher sets the password hasher. Default: bcrypt at default cost.
func WithHasher(h PasswordHasher) Option {
	return func(s *Service) {
		s.hasher = h
	}
}

// WithCookieWriter sets the transport cookie capability. Default: no-op.
func WithCookieWriter(c CookieWriter) Option {
	return func(s *Service) {
		s.cookies = c
	}
}

// WithNotifier sets the reminder notifier. Default: slog-backed logging
// notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithTokenSource sets the session token source. Default: crypto/rand
// hex tokens.
func WithTokenSource(t TokenSource) Option {
	return func(s *Service) {
		s.tokens = t
	}
}

// WithClock sets the time source used for creation stamps and expiry
// checks. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}
