// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

// Manager drives the session state machine: Unauthenticated →
// Authenticated → Expired/Terminated. Every validation re-checks the idle
// timeout before honoring the request, and rotates the session ID once the
// regeneration interval has elapsed.
type Manager struct {
	store         Store
	auditLog      *audit.Logger
	secret        string
	timeout       time.Duration
	regenInterval time.Duration

	log *logger.Logger
	now func() time.Time
}

// NewManager constructs a Manager over the given store.
func NewManager(store Store, auditLog *audit.Logger, secret string, cfg config.Session, log *logger.Logger) *Manager {
	return &Manager{
		store:         store,
		auditLog:      auditLog,
		secret:        secret,
		timeout:       cfg.Timeout,
		regenInterval: cfg.RegenerationInterval,
		log:           log,
		now:           time.Now,
	}
}

// Authenticate creates a fresh Authenticated session for the given user.
// A new session ID is always generated here — never reused from a
// pre-authentication cookie — which is what defeats fixation at login.
// The CSRF token is issued exactly once, for the session's whole lifetime.
func (m *Manager) Authenticate(ctx context.Context, username string) (models.Session, error) {
	id, err := newSessionID()
	if err != nil {
		return models.Session{}, err
	}

	csrfToken, err := NewCSRFToken(id, m.secret, m.timeout)
	if err != nil {
		return models.Session{}, err
	}

	now := m.now()
	sess := models.Session{
		ID:               id,
		Authenticated:    true,
		Username:         username,
		CSRFToken:        csrfToken,
		LoginTime:        now,
		LastRegeneration: now,
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	return sess, nil
}

// Validate loads the session for id and re-checks the timeout. An expired
// session emits exactly one timeout logout record, is destroyed, and yields
// ErrSessionExpired. A live session past its regeneration interval gets a
// fresh ID (old row deleted); rotated reports whether that happened so the
// caller can re-set the cookie.
func (m *Manager) Validate(ctx context.Context, id, ip string) (sess models.Session, rotated bool, err error) {
	sess, err = m.store.Get(ctx, id)
	if err != nil {
		return models.Session{}, false, err
	}

	now := m.now()

	if sess.ExpiredAt(now, m.timeout) {
		m.auditLog.Logout(sess.Username, ip, models.LogoutTimeout, sess.ID)
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			m.log.Warn().Err(err).Str("session", sess.ID).Msg("failed to delete expired session")
		}
		return models.Session{}, false, ErrSessionExpired
	}

	if now.Sub(sess.LastRegeneration) > m.regenInterval {
		rotatedSess, err := m.regenerate(ctx, sess, now)
		if err != nil {
			// rotation is hygiene, not correctness: keep serving on the old ID
			m.log.Warn().Err(err).Str("session", sess.ID).Msg("session regeneration failed")
			return sess, false, nil
		}
		return rotatedSess, true, nil
	}

	return sess, false, nil
}

// Terminate destroys the session and emits a manual-logout audit record.
func (m *Manager) Terminate(ctx context.Context, sess models.Session, ip string) error {
	m.auditLog.Logout(sess.Username, ip, models.LogoutManual, sess.ID)

	if err := m.store.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// VerifyCSRF checks a presented CSRF token against the session: the token
// must carry a valid signature and must be the very token stored in the
// session, compared in constant time.
func (m *Manager) VerifyCSRF(sess models.Session, token string) bool {
	if token == "" || sess.CSRFToken == "" {
		return false
	}
	if !VerifyCSRFToken(token, m.secret) {
		return false
	}
	return hmac.Equal([]byte(token), []byte(sess.CSRFToken))
}

// regenerate rotates the session ID, keeping every other field (including
// the CSRF token) intact. The new row is written before the old one is
// removed so a crash between the two leaves a usable session.
func (m *Manager) regenerate(ctx context.Context, sess models.Session, now time.Time) (models.Session, error) {
	oldID := sess.ID

	newID, err := newSessionID()
	if err != nil {
		return models.Session{}, err
	}

	sess.ID = newID
	sess.LastRegeneration = now

	if err := m.store.Save(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("persist rotated session: %w", err)
	}
	if err := m.store.Delete(ctx, oldID); err != nil {
		m.log.Warn().Err(err).Str("session", oldID).Msg("failed to delete rotated-out session")
	}

	return sess, nil
}

// newSessionID returns 32 hex characters from the OS CSPRNG.
func newSessionID() (string, error) {
	raw := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
