// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package models

// LogQueryResult is the JSON body returned by the log-viewer API.
// Data rows are positional column tuples matching the requested category,
// already masked and escaped for display.
type LogQueryResult struct {
	// Data is the page of rows, newest first.
	Data [][]any `json:"data"`

	// Total is the number of records in the whole log, not just this page.
	Total int `json:"total"`

	// RecordsFiltered is the number of rows actually returned after
	// offset/limit slicing and parse-failure skips.
	RecordsFiltered int `json:"recordsFiltered"`
}

// BookingResult is the JSON body returned by the booking proxy: display-ready
// positional tuples.
type BookingResult struct {
	Data [][]any `json:"data"`
}

// ErrorResponse is the uniform JSON error body for API routes. The message
// is intentionally generic; detail goes to the server-side log only.
type ErrorResponse struct {
	Error string `json:"error"`
}
