// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package models

import "time"

// Session is the server-side state associated with one client session
// cookie. It is created on successful login, mutated by periodic ID
// regeneration, and destroyed on logout, timeout, or explicit invalidation.
type Session struct {
	// ID is the opaque session identifier carried by the cookie.
	// Regenerated on login and every regeneration interval thereafter.
	ID string `json:"id"`

	// Authenticated reports whether the session belongs to a verified user.
	Authenticated bool `json:"authenticated"`

	// Username is the login of the authenticated user; empty while
	// unauthenticated.
	Username string `json:"username"`

	// CSRFToken is generated once per session lifetime and must accompany
	// state-changing requests.
	CSRFToken string `json:"csrf_token"`

	// LoginTime is the instant credentials were last verified.
	// Idle-timeout expiry is measured from this point.
	LoginTime time.Time `json:"login_time"`

	// LastRegeneration records when the session ID was last rotated.
	LastRegeneration time.Time `json:"last_regeneration"`
}

// ExpiredAt reports whether the session has outlived the given timeout as of
// now. Unauthenticated sessions never expire (there is nothing to expire).
func (s *Session) ExpiredAt(now time.Time, timeout time.Duration) bool {
	if !s.Authenticated {
		return false
	}
	return now.Sub(s.LoginTime) > timeout
}

// TableName returns the name of the database table backing the session store.
func (s Session) TableName() string {
	return "sessions"
}
