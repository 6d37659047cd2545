// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// csrfIssuer is the "iss" claim stamped into every CSRF token.
const csrfIssuer = "booking-admin"

// NewCSRFToken issues a signed HMAC-SHA256 JWT bound to the given session
// ID. Binding the token to the session via the "sub" claim means a token
// stolen from one session is useless in any other, and the signature keeps
// the token unforgeable without the application secret.
func NewCSRFToken(sessionID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    csrfIssuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign csrf token: %w", err)
	}
	return token, nil
}

// VerifyCSRFToken checks the token's signature, expiry, and issuer. The
// subject claim records the session ID the token was issued under, but is
// not re-checked here: the session ID rotates during the session's lifetime
// while the CSRF token is issued exactly once, so the manager instead
// compares the presented token against the one stored in the session.
func VerifyCSRFToken(tokenString, secret string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithIssuer(csrfIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return err == nil && token.Valid
}
