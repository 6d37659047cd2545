// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

// Package service implements the application layer between the HTTP
// handlers and the auth/audit/adapter packages: credential verification,
// audit-log queries, and the upstream booking proxy.
package service

import (
	"github.com/weisetech/booking-admin/internal/adapter"
	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
)

// NewServices wires every concrete service with its dependencies.
func NewServices(cfg *config.StructuredConfig, auditLog *audit.Logger, reader *audit.Reader, bookings *adapter.BookingsClient, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(cfg.App, log),
		LogsService:    NewLogsService(reader, auditLog, log),
		BookingService: NewBookingService(bookings, auditLog, cfg.Upstream, cfg.Logs.Timezone, log),
	}
}
