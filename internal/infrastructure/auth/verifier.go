package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a bcrypt hash of a random string, compared against when the
// account does not exist so that lookups take the same time either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordVerifier accepts both bcrypt hashes and legacy plain-text
// passwords in the stored column. Plain-text rows survive from the
// original deployment; new credentials are always hashed.
type PasswordVerifier struct{}

func NewPasswordVerifier() *PasswordVerifier {
	return &PasswordVerifier{}
}

func (v *PasswordVerifier) Verify(password, stored string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// DummyVerify burns the cost of a bcrypt comparison so that a login attempt
// against a nonexistent account is not distinguishable by timing.
func (v *PasswordVerifier) DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}

// Hash produces a bcrypt hash for storing new credentials.
func (v *PasswordVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
