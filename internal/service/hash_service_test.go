package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	apiKey := "a3f1c9d25e7b4860112233445566778899aabbccddeeff00"
	hash, err := svc.Hash(apiKey)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Format check
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v="), "hash should start with $argon2id$v=")

	match, err := svc.Verify(apiKey, hash)
	require.NoError(t, err)
	assert.True(t, match, "correct key should verify")
}

func TestArgon2HashService_VerifyWrongKey(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("correct-key")
	require.NoError(t, err)

	match, err := svc.Verify("wrong-key", hash)
	require.NoError(t, err)
	assert.False(t, match, "wrong key should not verify")
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashService()

	hash1, err := svc.Hash("same-key")
	require.NoError(t, err)

	hash2, err := svc.Hash("same-key")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same key should produce different hashes (different salts)")
}

func TestArgon2HashService_MalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	for _, bad := range []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
	} {
		_, err := svc.Verify("key", bad)
		assert.Error(t, err, "hash %q should be rejected", bad)
	}
}
