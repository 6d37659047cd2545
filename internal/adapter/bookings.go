// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

// Package adapter holds clients for external systems. The only integration
// today is the upstream booking API.
package adapter

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

// userAgent identifies this application to the upstream API.
const userAgent = "SecureApp/1.0"

// BookingsClient issues the date-ranged booking query to the upstream API.
//
// The client keeps TLS peer and hostname verification enabled, never follows
// redirects, and bounds every call by the configured connect and total
// timeouts. A timeout or upstream failure is fatal for the request being
// served — there are no automatic retries.
type BookingsClient struct {
	client *resty.Client
	url    string
	log    *logger.Logger
}

// NewBookingsClient constructs a BookingsClient from upstream configuration.
func NewBookingsClient(cfg config.Upstream, log *logger.Logger) *BookingsClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
	}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &BookingsClient{
		client: client,
		url:    cfg.URL,
		log:    log,
	}
}

// Fetch posts the query to the upstream endpoint and decodes the response
// into booking records. Returns:
//   - ErrNotConfigured when no upstream URL is set;
//   - ErrUpstreamStatus (wrapped with the code) on any non-200 reply;
//   - ErrUpstreamDecode when the body is not the expected JSON array.
func (c *BookingsClient) Fetch(ctx context.Context, query models.BookingQuery) ([]models.Booking, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(query).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("booking api call failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstreamStatus, resp.StatusCode())
	}

	var bookings []models.Booking
	if err := json.Unmarshal(resp.Body(), &bookings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamDecode, err)
	}

	return bookings, nil
}
