// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSRFToken_Verifies(t *testing.T) {
	token, err := NewCSRFToken("session-1", "secret", time.Hour)
	require.NoError(t, err)

	assert.True(t, VerifyCSRFToken(token, "secret"))
}

func TestVerifyCSRFToken_WrongSecret(t *testing.T) {
	token, err := NewCSRFToken("session-1", "secret", time.Hour)
	require.NoError(t, err)

	assert.False(t, VerifyCSRFToken(token, "other-secret"))
}

func TestVerifyCSRFToken_Expired(t *testing.T) {
	token, err := NewCSRFToken("session-1", "secret", -time.Second)
	require.NoError(t, err)

	assert.False(t, VerifyCSRFToken(token, "secret"))
}

func TestVerifyCSRFToken_Garbage(t *testing.T) {
	assert.False(t, VerifyCSRFToken("", "secret"))
	assert.False(t, VerifyCSRFToken("not.a.jwt", "secret"))
}

// TestVerifyCSRFToken_WrongIssuer verifies tokens minted by something else
// with the same secret are still rejected.
func TestVerifyCSRFToken_WrongIssuer(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "session-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.False(t, VerifyCSRFToken(token, "secret"))
}

// TestVerifyCSRFToken_RejectsNoneAlgorithm verifies the alg allowlist: an
// unsigned token never validates, even with a technically matching payload.
func TestVerifyCSRFToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    csrfIssuer,
		Subject:   "session-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.False(t, VerifyCSRFToken(token, "secret"))
}
