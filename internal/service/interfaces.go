// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package service

import (
	"context"

	"github.com/weisetech/booking-admin/models"
)

// AuthService verifies staff credentials against the configuration-sourced
// credential list.
type AuthService interface {
	// Login checks the candidate credentials. A failed check returns
	// ErrInvalidCredentials only after the anti-brute-force delay has
	// elapsed; the caller never learns whether the username or the
	// password was wrong.
	Login(ctx context.Context, username, password string) error

	// CanViewLogs reports whether the username is on the log-viewer
	// allowlist.
	CanViewLogs(username string) bool
}

// LogsService serves masked, paginated pages of the audit logs.
type LogsService interface {
	// Query reads one page of the named log type ("auth" or "data_access",
	// empty defaulting to "auth") and records the access itself in the
	// data-access log.
	Query(ctx context.Context, rc models.RequestContext, logType string, limit, offset int) (models.LogQueryResult, error)
}

// BookingService proxies validated date-ranged booking queries upstream.
type BookingService interface {
	// Query validates the date range, fetches bookings from the upstream
	// API, and returns display-ready rows. The access is recorded in the
	// data-access log.
	Query(ctx context.Context, rc models.RequestContext, fromDate, toDate string) (models.BookingResult, error)
}

// BookingFetcher is the outbound side of the booking proxy, satisfied by
// the upstream HTTP adapter.
type BookingFetcher interface {
	Fetch(ctx context.Context, query models.BookingQuery) ([]models.Booking, error)
}

// Services aggregates every application service behind one wiring point for
// the HTTP layer.
type Services struct {
	AuthService    AuthService
	LogsService    LogsService
	BookingService BookingService
}
