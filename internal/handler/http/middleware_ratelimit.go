// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"net/http"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/utils"
	"github.com/weisetech/booking-admin/models"
)

// withRateLimit admits at most the configured number of requests per client
// and path within the trailing window. Identifiers combine client IP and
// request path, so each route is limited independently.
//
// Rejections are recorded as security events and answered with 429.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ip := utils.ClientIP(r)
		identifier := ip + r.URL.Path

		if !h.limiter.Allow(identifier, h.rateLimitCfg.Requests, h.rateLimitCfg.Window) {
			log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("rate limit exceeded")

			h.auditLog.SecurityEvent(audit.EventRateLimitExceeded, "WARNING", ip, r.UserAgent(), h.currentSessionID(r), map[string]any{
				"path": r.URL.Path,
			})

			if isAPIRequest(r) {
				utils.WriteJSON(w, models.ErrorResponse{Error: "Too many requests"}, http.StatusTooManyRequests)
				return
			}
			http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
