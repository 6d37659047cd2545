package adapter

import "errors"

var (
	// ErrNotConfigured indicates the upstream API URL is missing from
	// configuration; the proxy cannot run without it.
	ErrNotConfigured = errors.New("upstream API URL not configured")

	// ErrUpstreamStatus indicates the upstream replied with a non-200 status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrUpstreamDecode indicates the upstream body was not valid JSON of
	// the expected shape.
	ErrUpstreamDecode = errors.New("invalid JSON response from upstream")
)
