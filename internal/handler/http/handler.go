// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"fmt"
	"html/template"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/ratelimit"
	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/internal/session"
	"github.com/weisetech/booking-admin/web"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	limiter  *ratelimit.Limiter
	auditLog *audit.Logger

	sessionCfg   config.Session
	rateLimitCfg config.RateLimit

	templates *template.Template

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	sessions *session.Manager,
	limiter *ratelimit.Limiter,
	auditLog *audit.Logger,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Handler, error) {
	templates, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		sessions:     sessions,
		limiter:      limiter,
		auditLog:     auditLog,
		sessionCfg:   cfg.Session,
		rateLimitCfg: cfg.RateLimit,
		templates:    templates,
		logger:       logger,
	}, nil
}
