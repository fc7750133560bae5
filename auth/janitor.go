package auth

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/laito/laito/store"
)

// Janitor periodically sweeps expired reminders, and expired sessions
// when a session TTL is configured. Expiry is otherwise only detected
// lazily on next use, so long-dead records would accumulate on disk.
type Janitor struct {
	service  *Service
	stopOnce sync.Once
	stopCh   chan struct{}
}

// StartJanitor spawns a background sweep every interval. Close stops it.
func (s *Service) StartJanitor(interval time.Duration) *Janitor {
	j := &Janitor{service: s, stopCh: make(chan struct{})}
	go j.loop(interval)
	return j
}

// Close stops the background sweep.
func (j *Janitor) Close() {
	j.stopOnce.Do(func() {
		close(j.stopCh)
	})
}

func (j *Janitor) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-j.stopCh:
			return
		case <-ticker.C:
			j.service.Sweep()
		}
	}
}

// Sweep deletes expired reminders and, when a session TTL is configured,
// expired sessions. Unreadable records are removed as well. Failures on
// individual records are logged and skipped; the sweep is best effort.
func (s *Service) Sweep() {
	now := s.now()

	codes, err := s.reminders.Codes()
	if err != nil {
		s.log.Warn("listing reminders for sweep failed", slog.String("error", err.Error()))
	}
	for _, code := range codes {
		reminder, err := s.reminders.Get(code)
		if errors.Is(err, store.ErrNotFound) {
			// Corrupt record, or deleted under us. Remove leftovers.
			_ = s.reminders.Delete(code)
			continue
		}
		if err != nil {
			continue
		}
		if reminder.Expired(now) {
			_ = s.reminders.Delete(code)
		}
	}

	if s.settings.SessionTTL <= 0 {
		return
	}
	tokens, err := s.sessions.Tokens()
	if err != nil {
		s.log.Warn("listing sessions for sweep failed", slog.String("error", err.Error()))
	}
	for _, token := range tokens {
		session, err := s.sessions.Get(token)
		if errors.Is(err, store.ErrNotFound) {
			_ = s.sessions.Delete(token)
			continue
		}
		if err != nil {
			continue
		}
		if session.expired(now, s.settings.SessionTTL) {
			_ = s.sessions.Delete(token)
		}
	}
}
