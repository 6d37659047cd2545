// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/internal/utils"
	"github.com/weisetech/booking-admin/models"
)

func (h *Handler) apiLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rc, ok := utils.GetRequestContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Unauthorized access"}, http.StatusUnauthorized)
		return
	}

	if !h.services.AuthService.CanViewLogs(rc.Username) {
		log.Warn().Str("username", rc.Username).Msg("log access denied")

		h.auditLog.SecurityEvent(audit.EventUnauthorizedLogAccess, "WARNING", rc.IP, rc.UserAgent, rc.SessionID, map[string]any{
			"username": rc.Username,
		})

		utils.WriteJSON(w, models.ErrorResponse{Error: "Access denied"}, http.StatusForbidden)
		return
	}

	query := r.URL.Query()
	logType := query.Get("type")
	limit := intParam(query.Get("limit"))
	offset := intParam(query.Get("offset"))

	result, err := h.services.LogsService.Query(ctx, rc, logType, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLogType):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid log type"}, http.StatusBadRequest)
		default:
			log.Err(err).Msg("log query failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// intParam parses a numeric query parameter. Absent or malformed values
// come back as zero and are clamped to their defaults further down.
func intParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
