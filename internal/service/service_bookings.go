// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package service

import (
	"context"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

const (
	queryDateLayout   = "2006-01-02"
	displayDateLayout = "02/01/2006"

	// receiptDateShift compensates for upstream receipt dates being stored
	// seven hours behind local Bangkok time.
	receiptDateShift = 25200 * time.Second
)

// bookingService fetches booking rows from the upstream API and projects
// them into display-ready table rows.
type bookingService struct {
	bookings BookingFetcher
	auditLog *audit.Logger

	maxRangeDays int
	loc          *time.Location

	logger *logger.Logger
}

// NewBookingService constructs a BookingService over the upstream client.
// Timezone is the IANA zone receipt dates are rendered in; an unknown zone
// falls back to UTC.
func NewBookingService(bookings BookingFetcher, auditLog *audit.Logger, cfg config.Upstream, timezone string, logger *logger.Logger) BookingService {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	return &bookingService{
		bookings:     bookings,
		auditLog:     auditLog,
		maxRangeDays: cfg.MaxDateRangeDays,
		loc:          loc,
		logger:       logger,
	}
}

// Query validates the requested date range, fetches matching bookings
// upstream and returns them as escaped display rows. The read itself is
// recorded as a data access event.
func (b *bookingService) Query(ctx context.Context, rc models.RequestContext, fromDate, toDate string) (models.BookingResult, error) {
	log := logger.FromContext(ctx)

	from, err := time.ParseInLocation(queryDateLayout, fromDate, b.loc)
	if err != nil {
		return models.BookingResult{}, ErrInvalidDateFormat
	}
	to, err := time.ParseInLocation(queryDateLayout, toDate, b.loc)
	if err != nil {
		return models.BookingResult{}, ErrInvalidDateFormat
	}

	if to.Before(from) {
		return models.BookingResult{}, ErrInvalidDateOrder
	}
	if b.maxRangeDays > 0 && to.Sub(from) > time.Duration(b.maxRangeDays)*24*time.Hour {
		return models.BookingResult{}, ErrDateRangeTooWide
	}

	bookings, err := b.bookings.Fetch(ctx, models.BookingQuery{FromDate: fromDate, ToDate: toDate})
	if err != nil {
		log.Error().Err(err).
			Str("date_from", fromDate).
			Str("date_to", toDate).
			Msg("upstream booking fetch failed")
		return models.BookingResult{}, ErrUpstreamFailed
	}

	result := models.BookingResult{Data: make([][]any, 0, len(bookings))}
	for _, booking := range bookings {
		row, ok := b.projectRow(booking)
		if !ok {
			continue
		}
		result.Data = append(result.Data, row)
	}

	b.auditLog.DataAccess(
		rc.Username,
		rc.IP,
		"/api/bookings",
		fromDate+" to "+toDate,
		len(result.Data),
		rc.SessionID,
		rc.UserAgent,
	)

	return result, nil
}

// projectRow turns one upstream booking into a display row. Rows missing
// any of the required identifying fields are dropped.
func (b *bookingService) projectRow(booking models.Booking) ([]any, bool) {
	if booking.ReceiptDate == "" || booking.CustomerName == "" || booking.MobilePhone == "" {
		return nil, false
	}

	receipt, err := b.parseReceiptDate(booking.ReceiptDate)
	if err != nil {
		return nil, false
	}

	return []any{
		receipt.Add(receiptDateShift).Format(displayDateLayout),
		html.EscapeString(booking.CustomerName),
		html.EscapeString(booking.MobilePhone),
		html.EscapeString(booking.Sale),
		html.EscapeString(booking.Manager),
		formatMoney(booking.Price),
		formatMoney(booking.DownPayment),
		formatMoney(booking.AdvancePay),
		html.EscapeString(booking.Model),
		html.EscapeString(booking.CarType),
		html.EscapeString(booking.Color),
		html.EscapeString(booking.JobStatus),
	}, true
}

// receiptDateLayouts covers the formats the upstream API has been seen to
// emit for receiptdate.
var receiptDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (b *bookingService) parseReceiptDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range receiptDateLayouts {
		t, err := time.ParseInLocation(layout, raw, b.loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// formatMoney renders an amount rounded to whole units with comma thousand
// separators, e.g. 1234567.8 becomes "1,234,568".
func formatMoney(amount float64) string {
	rounded := int64(math.Round(amount))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)

	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}

	if negative {
		return "-" + sb.String()
	}
	return sb.String()
}
