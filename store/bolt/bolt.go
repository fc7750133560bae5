// Package bolt provides a BBolt-backed implementation of store.Records.
package bolt

import (
	"fmt"

	"github.com/laito/laito/store"
	"go.etcd.io/bbolt"
)

// Store implements store.Records backed by one bucket of a BBolt
// database. Several stores (sessions, reminders) can share a database by
// using distinct buckets.
type Store struct {
	db     *bbolt.DB
	bucket []byte
}

var _ store.Records = (*Store)(nil)

// New returns a store over the named bucket of the given BBolt database.
func New(db *bbolt.DB, bucket string) *Store {
	return &Store{db: db, bucket: []byte(bucket)}
}

// Open opens a BBolt database at the given path and returns a store over
// the named bucket.
func Open(path, bucket string, options *bbolt.Options) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	return New(db, bucket), nil
}

// Close closes the underlying BBolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(key string, data []byte) error {
	if !store.ValidKey(key) {
		return fmt.Errorf("%w: %q", store.ErrInvalidKey, key)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

func (s *Store) Get(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return fmt.Errorf("%s: %w", key, store.ErrNotFound)
		}
		v := b.Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%s: %w", key, store.ErrNotFound)
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return fmt.Errorf("%s: %w", key, store.ErrNotFound)
		}
		if b.Get([]byte(key)) == nil {
			return fmt.Errorf("%s: %w", key, store.ErrNotFound)
		}
		return b.Delete([]byte(key))
	})
}

func (s *Store) List() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
