package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces the secure (bcrypt) form used for all new accounts
// and for migrated legacy accounts.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// legacyHash is the historical unsalted SHA-256 hex digest. It is only ever
// verified against, never written.
func legacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks password against storedHash, trying the secure form
// first and the legacy digest second. needsRehash is true when the match came
// from the legacy digest, so the caller can migrate the stored hash.
func VerifyPassword(storedHash, password string) (ok bool, needsRehash bool) {
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil {
		return true, false
	}

	legacy := legacyHash(password)
	if subtle.ConstantTimeCompare([]byte(legacy), []byte(storedHash)) == 1 {
		return true, true
	}

	return false, false
}
