// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"net/http"
	"time"

	"github.com/weisetech/booking-admin/internal/utils"
)

// dashboardPageData feeds the dashboard template.
type dashboardPageData struct {
	Username    string
	CSRFToken   string
	CanViewLogs bool
	Today       string
}

func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.renderPage(w, "dashboard.html", http.StatusOK, dashboardPageData{
		Username:    sess.Username,
		CSRFToken:   sess.CSRFToken,
		CanViewLogs: h.services.AuthService.CanViewLogs(sess.Username),
		Today:       time.Now().Format("2006-01-02"),
	})
}

func (h *Handler) logsPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !h.services.AuthService.CanViewLogs(sess.Username) {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	h.renderPage(w, "logs.html", http.StatusOK, nil)
}

// renderPage executes one of the embedded templates. A failed render after
// the header was written cannot be retracted, so it is only logged.
func (h *Handler) renderPage(w http.ResponseWriter, name string, statusCode int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Err(err).Str("template", name).Msg("page render failed")
	}
}
