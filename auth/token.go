package auth

import (
	"strings"

	"github.com/laito/laito/internal/util"
)

// tokenEntropyBytes is the entropy carried by each token and reminder
// code. 32 bytes of CSPRNG output make collisions and guessing
// astronomically unlikely; the hex encoding is 64 characters, well within
// the store key allow-list.
const tokenEntropyBytes = 32

// TokenSource produces session tokens. Tokens must be unpredictable and
// must never begin with the configured reminder prefix.
type TokenSource interface {
	NewToken() (string, error)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() (string, error)

func (f TokenSourceFunc) NewToken() (string, error) {
	return f()
}

// randomTokens is the default TokenSource: lowercase hex over crypto/rand.
// The original derivation (digest of username + time + small random) is
// deliberately not reproduced.
type randomTokens struct{}

func (randomTokens) NewToken() (string, error) {
	return util.RandomHex(tokenEntropyBytes)
}

// newReminderCode derives a reminder code: the configured prefix followed
// by a fresh token. The prefix is what disambiguates reminder codes from
// session tokens, so it must never be empty.
func (s *Service) newReminderCode() (string, error) {
	token, err := s.tokens.NewToken()
	if err != nil {
		return "", err
	}
	return s.settings.ReminderPrefix + token, nil
}

// isReminderCode reports whether the presented credential is a reminder
// code rather than a session token. Hex tokens can never start with the
// prefix because settings validation requires the prefix to contain a
// non-hex character.
func (s *Service) isReminderCode(credential string) bool {
	return strings.HasPrefix(credential, s.settings.ReminderPrefix)
}

// validReminderPrefix requires a non-empty prefix containing at least one
// character outside the token hex alphabet, keeping reminder codes and
// session tokens lexically disjoint.
func validReminderPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	for _, c := range prefix {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
		if !isHex {
			return true
		}
	}
	return false
}
