// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package http

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/internal/utils"
	"github.com/weisetech/booking-admin/models"
)

func (h *Handler) apiBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rc, ok := utils.GetRequestContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Unauthorized access"}, http.StatusUnauthorized)
		return
	}

	query, err := bookingQueryFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid booking request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.BookingService.Query(ctx, rc, query.FromDate, query.ToDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateFormat):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"}, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidDateOrder):
			utils.WriteJSON(w, models.ErrorResponse{Error: "From date must be before to date"}, http.StatusBadRequest)
		case errors.Is(err, service.ErrDateRangeTooWide):
			utils.WriteJSON(w, models.ErrorResponse{Error: "Date range is too wide"}, http.StatusBadRequest)
		case errors.Is(err, service.ErrUpstreamFailed):
			// detail stays server-side; the client gets the generic body
			log.Err(err).Msg("booking upstream failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		default:
			log.Err(err).Msg("booking query failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// bookingQueryFromRequest extracts the date range from either the JSON body
// (POST) or the query string (GET). The legacy fmdate/todate parameter
// names are still accepted on GET.
func bookingQueryFromRequest(r *http.Request) (models.BookingQuery, error) {
	if r.Method == http.MethodPost {
		var query models.BookingQuery
		if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
			return models.BookingQuery{}, err
		}
		return query, nil
	}

	params := r.URL.Query()

	from := params.Get("date_from")
	if from == "" {
		from = params.Get("fmdate")
	}
	to := params.Get("date_to")
	if to == "" {
		to = params.Get("todate")
	}

	return models.BookingQuery{FromDate: from, ToDate: to}, nil
}
