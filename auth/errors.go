package auth

import "errors"

var (
	// ErrInvalidCredentials indicates the username/password pair was
	// rejected. Unknown user and wrong password are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates no session exists for the presented token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidReminder indicates no reminder exists for the presented code.
	ErrInvalidReminder = errors.New("invalid reminder")
	// ErrReminderExpired indicates the reminder exists but its expiry is in
	// the past.
	ErrReminderExpired = errors.New("reminder expired")
	// ErrStorage wraps I/O failures from the backing stores. Low-level
	// detail stays in the wrapped chain and is never surfaced verbatim.
	ErrStorage = errors.New("storage failure")
	// ErrUserNotFound reports a missing user record. Internal: operations
	// where enumeration matters translate it before returning.
	ErrUserNotFound = errors.New("user not found")
)
