package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/laito/laito/store"
	"github.com/laito/laito/users"
)

// SessionStore persists session records, one per token, through a
// store.Records backend. It does no expiry checking of its own; the
// service decides what a stale record means.
type SessionStore struct {
	records store.Records
}

// NewSessionStore creates a session store over the given backend.
func NewSessionStore(records store.Records) *SessionStore {
	return &SessionStore{records: records}
}

// Put serializes and stores a session record keyed by its token,
// overwriting any existing record.
func (s *SessionStore) Put(token string, user users.Record, now time.Time) (Session, error) {
	session := Session{
		User:      user,
		Token:     token,
		CreatedAt: now.Unix(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return Session{}, fmt.Errorf("encoding session: %w", err)
	}
	if err := s.records.Put(token, data); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Get returns the session record for token. A missing or unparsable
// record is reported as store.ErrNotFound; an unparsable file is treated
// the same as a missing one, matching the original behavior.
func (s *SessionStore) Get(token string) (Session, error) {
	data, err := s.records.Get(token)
	if err != nil {
		return Session{}, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("%s: %w", token, store.ErrNotFound)
	}
	return session, nil
}

// Delete removes the session record for token. Deleting a missing record
// fails with store.ErrNotFound.
func (s *SessionStore) Delete(token string) error {
	return s.records.Delete(token)
}

// Tokens lists the tokens of all stored sessions.
func (s *SessionStore) Tokens() ([]string, error) {
	return s.records.List()
}
