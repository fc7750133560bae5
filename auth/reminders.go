package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/laito/laito/store"
	"github.com/laito/laito/users"
)

// ReminderStore persists password-reset records, one per reminder code.
// The expiry is fixed at write time (creation + ttl); checking it is the
// service's responsibility, not the store's.
type ReminderStore struct {
	records store.Records
	ttl     time.Duration
}

// NewReminderStore creates a reminder store over the given backend.
// Records written through it expire ttl after creation.
func NewReminderStore(records store.Records, ttl time.Duration) *ReminderStore {
	return &ReminderStore{records: records, ttl: ttl}
}

// Put stores a reminder mapping code to the target username, stamped with
// its expiry. The user payload holds only the configured username field.
func (s *ReminderStore) Put(code string, user users.Record, now time.Time) (Reminder, error) {
	reminder := Reminder{
		User:      user,
		Code:      code,
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	data, err := json.Marshal(reminder)
	if err != nil {
		return Reminder{}, fmt.Errorf("encoding reminder: %w", err)
	}
	if err := s.records.Put(code, data); err != nil {
		return Reminder{}, err
	}
	return reminder, nil
}

// Get returns the reminder record for code. Missing and unparsable
// records both report store.ErrNotFound.
func (s *ReminderStore) Get(code string) (Reminder, error) {
	data, err := s.records.Get(code)
	if err != nil {
		return Reminder{}, err
	}
	var reminder Reminder
	if err := json.Unmarshal(data, &reminder); err != nil {
		return Reminder{}, fmt.Errorf("%s: %w", code, store.ErrNotFound)
	}
	return reminder, nil
}

// Delete removes the reminder record for code. Deleting a missing record
// fails with store.ErrNotFound.
func (s *ReminderStore) Delete(code string) error {
	return s.records.Delete(code)
}

// Codes lists the codes of all stored reminders.
func (s *ReminderStore) Codes() ([]string, error) {
	return s.records.List()
}
