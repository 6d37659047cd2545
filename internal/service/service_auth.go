// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package service

import (
	"context"
	"slices"
	"time"

	"github.com/weisetech/booking-admin/internal/auth"
	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
)

// failureDelay is the artificial pause before a failed login returns,
// slowing down online brute-force attempts.
const failureDelay = 2 * time.Second

// authService is the concrete implementation of AuthService.
// The credential set is rebuilt from configuration on every check, so
// credential changes take effect without a restart.
type authService struct {
	cfg config.App

	// delay is failureDelay in production; tests shrink it.
	delay time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the application credential
// configuration. The credential list is parsed once here for the startup
// log; the Login path re-parses on every check.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	creds := auth.ParseUsers(cfg)
	logger.Info().
		Int("count", len(creds)).
		Strs("usernames", creds.Usernames()).
		Msg("credential list loaded")

	return &authService{
		cfg:    cfg,
		delay:  failureDelay,
		logger: logger,
	}
}

// Login verifies the candidate credentials.
//
// Both the unknown-username and wrong-password cases produce the same
// ErrInvalidCredentials after the same delay, so a caller (or an attacker
// watching response times) cannot tell them apart.
func (a *authService) Login(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	creds := auth.ParseUsers(a.cfg)

	if auth.VerifyUser(username, password, creds, a.cfg.Secret) {
		log.Info().Str("username", username).Msg("credentials verified")
		return nil
	}

	log.Warn().Str("username", username).Msg("credential verification failed")

	select {
	case <-time.After(a.delay):
	case <-ctx.Done():
	}

	return ErrInvalidCredentials
}

// CanViewLogs reports whether username is on the configured allowlist.
func (a *authService) CanViewLogs(username string) bool {
	return username != "" && slices.Contains(a.cfg.LogViewers, username)
}
