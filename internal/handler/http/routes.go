// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSecurityHeaders)

	// routes without an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.loginSubmit)
	})

	// HTML pages behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.sessionGuard)
		r.Get("/", h.dashboardPage)
		r.Get("/dashboard", h.dashboardPage)
		r.Get("/logs", h.logsPage)
		r.Handle("/logout", http.HandlerFunc(h.logout))
	})

	// JSON API behind the session guard and rate limiter
	router.Group(func(r chi.Router) {
		r.Use(h.sessionGuard)
		r.Use(h.withRateLimit)
		r.Get("/api/logs", h.apiLogs)
		r.Get("/api/bookings", h.apiBookings)
		r.With(h.requireCSRF).Post("/api/bookings", h.apiBookings)
	})

	return router
}
