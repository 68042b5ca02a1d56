package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("4821")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v="), "hash should start with $argon2id$v=")

	match, err := svc.Verify("4821", hash)
	require.NoError(t, err)
	assert.True(t, match, "correct PIN should verify")
}

func TestArgon2HashService_VerifyWrongPin(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("4821")
	require.NoError(t, err)

	match, err := svc.Verify("4812", hash)
	require.NoError(t, err)
	assert.False(t, match, "wrong PIN should not verify")
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashService()

	hash1, err := svc.Hash("0000")
	require.NoError(t, err)
	hash2, err := svc.Hash("0000")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same PIN should produce different hashes (different salts)")
}

func TestArgon2HashService_VerifyInvalidFormat(t *testing.T) {
	svc := NewArgon2HashService()

	_, err := svc.Verify("1234", "not-a-valid-hash")
	assert.Error(t, err)

	_, err = svc.Verify("1234", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	assert.ErrorContains(t, err, "unsupported algorithm")
}

func TestArgon2HashService_HashContainsParams(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("1234")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=65536,t=1,p=4", "hash should contain Argon2id params")
}

func TestArgon2HashService_VerifyRejectsUnsafeParams(t *testing.T) {
	svc := NewArgon2HashService()

	tests := []struct {
		name string
		hash string
		want string
	}{
		{"old version", "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA", "unsupported argon2 version"},
		{"huge memory", "$argon2id$v=19$m=4194304,t=1,p=4$c2FsdA$aGFzaA", "out of range"},
		{"zero time", "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.Verify("1234", tt.hash)
			assert.False(t, ok)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
