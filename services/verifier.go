// File: services/verifier.go
package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether an email/password pair belongs to the admin.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// StaticVerifier compares against one configured plaintext pair. There is no
// hashing, lockout or throttling here; prefer BcryptVerifier outside development.
type StaticVerifier struct {
	Email    string
	Password string
}

func (v StaticVerifier) Verify(email, password string) bool {
	if v.Email == "" || v.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password))
	return emailOK&passwordOK == 1
}

// BcryptVerifier checks the password against a bcrypt hash.
type BcryptVerifier struct {
	Email string
	Hash  string
}

func (v BcryptVerifier) Verify(email, password string) bool {
	if v.Email == "" || v.Hash == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(v.Email)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(password)) == nil
}
