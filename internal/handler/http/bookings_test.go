package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/models"
)

func bookingServices(queryFn func(ctx context.Context, rc models.RequestContext, fromDate, toDate string) (models.BookingResult, error)) *service.Services {
	return &service.Services{
		BookingService: &mockBookingService{queryFn: queryFn},
	}
}

// capturedRange records the date range the service was asked for.
type capturedRange struct {
	from, to string
}

func captureBookingServices(captured *capturedRange) *service.Services {
	return bookingServices(func(_ context.Context, _ models.RequestContext, fromDate, toDate string) (models.BookingResult, error) {
		captured.from = fromDate
		captured.to = toDate
		return models.BookingResult{Data: [][]any{}}, nil
	})
}

// ─────────────────────────────────────────────
// GET /api/bookings
// ─────────────────────────────────────────────

func TestAPIBookings_GetPassesDateRange(t *testing.T) {
	var captured capturedRange
	h := newTestHandler(t, captureBookingServices(&captured))
	sess := loginSession(t, h, "admin")
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date_from=2026-01-01&date_to=2026-01-31", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-01-01", captured.from)
	assert.Equal(t, "2026-01-31", captured.to)
}

// TestAPIBookings_GetAcceptsLegacyParams verifies the old fmdate/todate
// parameter names still work.
func TestAPIBookings_GetAcceptsLegacyParams(t *testing.T) {
	var captured capturedRange
	h := newTestHandler(t, captureBookingServices(&captured))
	sess := loginSession(t, h, "admin")
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?fmdate=2026-02-01&todate=2026-02-28", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-02-01", captured.from)
	assert.Equal(t, "2026-02-28", captured.to)
}

// ─────────────────────────────────────────────
// POST /api/bookings
// ─────────────────────────────────────────────

func TestAPIBookings_PostDecodesJSONBody(t *testing.T) {
	var captured capturedRange
	h := newTestHandler(t, captureBookingServices(&captured))
	sess := loginSession(t, h, "admin")
	router := h.Init()

	body := `{"date_from":"2026-03-01","date_to":"2026-03-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(csrfHeader, sess.CSRFToken)
	req.AddCookie(sessionCookie(sess.ID))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-03-01", captured.from)
	assert.Equal(t, "2026-03-31", captured.to)
}

func TestAPIBookings_PostMalformedBody(t *testing.T) {
	h := newTestHandler(t, bookingServices(nil))
	sess := loginSession(t, h, "admin")
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	req.Header.Set(csrfHeader, sess.CSRFToken)
	req.AddCookie(sessionCookie(sess.ID))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON was passed"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestAPIBookings_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid date format",
			serviceErr: service.ErrInvalidDateFormat,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:       "reversed range",
			serviceErr: service.ErrInvalidDateOrder,
			wantStatus: http.StatusBadRequest,
			wantError:  "From date must be before to date",
		},
		{
			name:       "range too wide",
			serviceErr: service.ErrDateRangeTooWide,
			wantStatus: http.StatusBadRequest,
			wantError:  "Date range is too wide",
		},
		{
			name:       "upstream down",
			serviceErr: service.ErrUpstreamFailed,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "unexpected",
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, bookingServices(
				func(context.Context, models.RequestContext, string, string) (models.BookingResult, error) {
					return models.BookingResult{}, tt.serviceErr
				},
			))
			sess := loginSession(t, h, "admin")
			router := h.Init()

			req := httptest.NewRequest(http.MethodGet, "/api/bookings?date_from=x&date_to=y", nil)
			req.AddCookie(sessionCookie(sess.ID))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
