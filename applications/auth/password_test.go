package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPassword_Bcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	ok, needsRehash := VerifyPassword(hash, "s3cret-pass")
	assert.True(t, ok)
	assert.False(t, needsRehash, "bcrypt matches must not trigger a rehash")

	ok, _ = VerifyPassword(hash, "wrong-pass")
	assert.False(t, ok)
}

func TestVerifyPassword_LegacyDigest(t *testing.T) {
	sum := sha256.Sum256([]byte("old-account-pw"))
	legacy := hex.EncodeToString(sum[:])

	ok, needsRehash := VerifyPassword(legacy, "old-account-pw")
	assert.True(t, ok)
	assert.True(t, needsRehash, "legacy matches must be upgraded")

	ok, _ = VerifyPassword(legacy, "not-the-password")
	assert.False(t, ok)
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	ok, needsRehash := VerifyPassword("not-a-real-hash", "anything")
	assert.False(t, ok)
	assert.False(t, needsRehash)
}

func TestHashPassword_NeverLegacyShape(t *testing.T) {
	hash, err := HashPassword("brand-new")
	require.NoError(t, err)
	// bcrypt output starts with its version marker, never a bare hex digest.
	assert.Contains(t, hash, "$2")
	assert.NotEqual(t, legacyHash("brand-new"), hash)
}
