// Package auth verifies the shared admin secret that gates mutation
// commands. Authentication is binary: a session either holds the
// secret or it does not.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Secret checks presented passwords against the configured admin secret.
// When a bcrypt hash is configured it takes precedence over the
// plaintext secret, so deployments can avoid keeping the secret
// readable in config files.
type Secret struct {
	plain []byte
	hash  []byte
}

// NewSecret builds a verifier from a plaintext secret and an optional
// bcrypt hash of it.
func NewSecret(plain, bcryptHash string) Secret {
	return Secret{
		plain: []byte(plain),
		hash:  []byte(bcryptHash),
	}
}

// Verify reports whether the presented password matches the admin secret.
// The comparison is always against the full secret.
func (s Secret) Verify(password string) bool {
	if len(s.hash) > 0 {
		return bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
	}
	if len(s.plain) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(s.plain, []byte(password)) == 1
}

// HashSecret generates a bcrypt hash suitable for the admin_secret_hash
// config field.
func HashSecret(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
