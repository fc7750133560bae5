package auth

import (
	"fmt"

	"github.com/laito/laito/internal/util"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher provides password hashing and verification.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password.
	Hash(password string) (string, error)
	// Verify reports whether the password matches the stored hash.
	// Comparison is constant-time with respect to the hash contents.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt. Passwords are NFKD
// normalized before hashing so the same password typed on different
// platforms verifies consistently.
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given cost. A cost of 0 uses
// bcrypt's default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(util.Normalize(password)), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(util.Normalize(password))) == nil
}

// dummyPasswordHash is verified against when a login names an unknown
// user, so the response time does not reveal whether the user exists.
// The all-A checksum is not the bcrypt output of any input, so it can
// never match.
const dummyPasswordHash = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
