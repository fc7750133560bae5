// Package users defines the credential source consumed by the auth
// service: a queryable collection of user records, filterable by id and by
// a configured username field.
package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user record matches the lookup.
var ErrNotFound = errors.New("user not found")

// IDField is the record field holding the user's unique identifier.
const IDField = "id"

// Record is a user record. Field names are not fixed by this package: the
// username and password-hash fields are configured (auth.username,
// auth.password), and any other fields are free-form profile data.
type Record map[string]string

// ID returns the record's unique identifier.
func (r Record) ID() string {
	return r[IDField]
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Sanitized returns a copy of the record with the password hash field
// removed. Records handed back to callers after authentication must always
// pass through here first.
func (r Record) Sanitized(passwordField string) Record {
	out := r.Clone()
	delete(out, passwordField)
	return out
}

// Directory is a queryable collection of user records. Find performs an
// exact match on the given field; it never partial-matches. SetField
// overwrites a single field of the record with the given id — the auth
// service uses it only to replace the password hash.
type Directory interface {
	Find(ctx context.Context, field, value string) (Record, error)
	SetField(ctx context.Context, id, field, value string) error
}
