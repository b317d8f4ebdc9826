package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher provides password hashing and verification functionality.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher. A zero cost means bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash generates a bcrypt hash of the given password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify checks password against a stored value.
//
// Stored values that are not bcrypt hashes are plaintext rows from older
// deployments; they are compared in constant time and reported as needing
// a rehash. A bcrypt hash with a different cost also needs a rehash.
func (h *PasswordHasher) Verify(password, stored string) (ok, needsRehash bool) {
	cost, err := bcrypt.Cost([]byte(stored))
	if err != nil {
		ok = subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
		return ok, ok
	}
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
		return false, false
	}
	return true, cost != h.cost
}
