// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/session"
	"github.com/weisetech/booking-admin/internal/utils"
	"github.com/weisetech/booking-admin/models"
)

// sessionGuard is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the session via
// [session.Manager.Validate] and, on success, stores the session and a
// per-request audit context in the request context before delegating to the
// next handler. When validation rotated the session ID the refreshed cookie
// is written back to the client.
//
// Rejection behaviour depends on the route class: API routes receive a JSON
// 401, HTML routes are redirected to the login page (with a timeout marker
// when the session expired).
func (h *Handler) sessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.sessionCfg.CookieName)
		if err != nil {
			h.rejectUnauthenticated(w, r, false)
			return
		}

		ctx := r.Context()
		ip := utils.ClientIP(r)

		sess, rotated, err := h.sessions.Validate(ctx, cookie.Value, ip)
		if err != nil {
			h.clearSessionCookie(w)

			switch {
			case errors.Is(err, session.ErrSessionExpired):
				log.Warn().Msg("session expired")
				h.rejectUnauthenticated(w, r, true)
			case errors.Is(err, session.ErrSessionNotFound):
				h.rejectUnauthenticated(w, r, false)
			default:
				log.Err(err).Msg("session validation failed")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		if !sess.Authenticated {
			h.rejectUnauthenticated(w, r, false)
			return
		}

		if rotated {
			h.setSessionCookie(w, sess.ID)
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, sess)
		ctx = context.WithValue(ctx, utils.RequestCtxKey, models.RequestContext{
			Username:  sess.Username,
			IP:        ip,
			UserAgent: r.UserAgent(),
			SessionID: sess.ID,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) rejectUnauthenticated(w http.ResponseWriter, r *http.Request, expired bool) {
	if isAPIRequest(r) {
		msg := "Unauthorized access"
		if expired {
			msg = "Session expired"
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: msg}, http.StatusUnauthorized)
		return
	}

	target := "/login"
	if expired {
		target = "/login?timeout=1"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}
