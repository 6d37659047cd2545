// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// HashPassword
// ─────────────────────────────────────────────

// TestHashPassword_Format verifies the encoded hash carries the fixed
// parameter set in standard PHC form.
func TestHashPassword_Format(t *testing.T) {
	encoded, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=4,p=3$"))

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 6)
	assert.NotEmpty(t, parts[4], "salt segment")
	assert.NotEmpty(t, parts[5], "digest segment")
}

// TestHashPassword_SaltVaries verifies two hashes of the same password
// differ because of the random salt.
func TestHashPassword_SaltVaries(t *testing.T) {
	first, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	second, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// ─────────────────────────────────────────────
// VerifyPassword
// ─────────────────────────────────────────────

func TestVerifyPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("s3cret", "pepper", encoded))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	encoded, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong", "pepper", encoded))
}

// TestVerifyPassword_SecretIsPartOfTheHash verifies the application secret
// participates in the digest: the same password with a different secret
// must not verify.
func TestVerifyPassword_SecretIsPartOfTheHash(t *testing.T) {
	encoded, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("s3cret", "other-pepper", encoded))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not a phc string", encoded: "plainhash"},
		{name: "wrong algorithm", encoded: "$argon2i$v=19$m=65536,t=4,p=3$c2FsdA$ZGlnZXN0"},
		{name: "missing segments", encoded: "$argon2id$v=19$m=65536,t=4,p=3"},
		{name: "bad base64 salt", encoded: "$argon2id$v=19$m=65536,t=4,p=3$!!!$ZGlnZXN0"},
		{name: "bad version", encoded: "$argon2id$v=18$m=65536,t=4,p=3$c2FsdA$ZGlnZXN0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("s3cret", "pepper", tt.encoded))
		})
	}
}
