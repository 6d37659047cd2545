package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidLogType = errors.New("invalid log type")

	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateOrder  = errors.New("from date must be before to date")
	ErrDateRangeTooWide  = errors.New("date range exceeds maximum")

	ErrUpstreamFailed = errors.New("upstream booking query failed")
)
