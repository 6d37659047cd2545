// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/internal/utils"
)

// loginPageData feeds the login template.
type loginPageData struct {
	Error     string
	LoggedOut bool
	TimedOut  bool
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if h.authenticatedSession(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	query := r.URL.Query()
	h.renderPage(w, "login.html", http.StatusOK, loginPageData{
		LoggedOut: query.Get("logout") == "1",
		TimedOut:  query.Get("timeout") == "1",
	})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.authenticatedSession(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		h.renderPage(w, "login.html", http.StatusBadRequest, loginPageData{Error: "Invalid request"})
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	ip := utils.ClientIP(r)
	userAgent := r.UserAgent()

	if err := h.services.AuthService.Login(ctx, username, password); err != nil {
		h.auditLog.AuthAttempt(username, ip, false, userAgent, h.currentSessionID(r))

		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("username", username).Msg("login rejected")
			h.renderPage(w, "login.html", http.StatusUnauthorized, loginPageData{Error: "Invalid username or password"})
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	sess, err := h.sessions.Authenticate(ctx, username)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.auditLog.AuthAttempt(username, ip, true, userAgent, sess.ID)
	h.setSessionCookie(w, sess.ID)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ip := utils.ClientIP(r)

	if err := h.sessions.Terminate(ctx, sess, ip); err != nil {
		log.Err(err).Msg("session termination failed")
	}

	h.auditLog.SecurityEvent(audit.EventUserLogout, "INFO", ip, r.UserAgent(), sess.ID, map[string]any{
		"username": sess.Username,
	})

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login?logout=1", http.StatusSeeOther)
}

// authenticatedSession reports whether the request carries a cookie for a
// live authenticated session. Used on the login routes, which run outside
// the session guard.
func (h *Handler) authenticatedSession(r *http.Request) bool {
	cookie, err := r.Cookie(h.sessionCfg.CookieName)
	if err != nil {
		return false
	}

	sess, _, err := h.sessions.Validate(r.Context(), cookie.Value, utils.ClientIP(r))
	return err == nil && sess.Authenticated
}

// currentSessionID returns the session cookie value if present, masked-use
// only: failed login attempts are recorded against whatever session the
// client presented.
func (h *Handler) currentSessionID(r *http.Request) string {
	cookie, err := r.Cookie(h.sessionCfg.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
