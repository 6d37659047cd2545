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

const csrfHeader = "X-CSRF-Token"

// requireCSRF guards state-changing API routes. The token is taken from the
// X-CSRF-Token header (or the csrf_token form field as a fallback) and must
// match the one bound to the validated session.
func (h *Handler) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sess, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			utils.WriteJSON(w, models.ErrorResponse{Error: "Unauthorized access"}, http.StatusUnauthorized)
			return
		}

		token := r.Header.Get(csrfHeader)
		if token == "" {
			token = r.PostFormValue("csrf_token")
		}

		if !h.sessions.VerifyCSRF(sess, token) {
			ip := utils.ClientIP(r)
			log.Warn().Str("ip", ip).Msg("csrf validation failed")

			h.auditLog.SecurityEvent(audit.EventCSRFValidationFailed, "WARNING", ip, r.UserAgent(), sess.ID, map[string]any{
				"path": r.URL.Path,
			})

			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid CSRF token"}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
