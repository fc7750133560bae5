// Package store provides the keyed record storage abstraction backing the
// session and reminder stores.
package store

import "errors"

// ErrNotFound is returned when no record exists for the requested key.
var ErrNotFound = errors.New("record not found")

// ErrInvalidKey is returned when a record key contains characters outside
// the allowed set.
var ErrInvalidKey = errors.New("invalid record key")

// Records defines the interface for keyed record storage. Each instance
// is scoped to one collection (e.g. one session folder or one reminder
// folder). Put overwrites an existing record; Delete fails with
// ErrNotFound if the record does not exist.
type Records interface {
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	List() ([]string, error)
}

// ValidKey reports whether key is safe to use as a record identifier.
// Keys are restricted to an allow-list so a hostile key can never escape
// the backing directory via path separators or dot segments.
func ValidKey(key string) bool {
	if key == "" || len(key) > 255 {
		return false
	}
	for _, c := range key {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
