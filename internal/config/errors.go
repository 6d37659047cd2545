package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidConfig indicates a structural rule declared in `validate`
	// tags failed (missing required field, out-of-range minimum).
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidLogsConfigs indicates invalid audit-log settings
	// (for example, an unknown timezone name).
	ErrInvalidLogsConfigs = errors.New("invalid logs configuration")
	// ErrInvalidUpstreamConfigs indicates invalid upstream API settings
	// (for example, a connect timeout larger than the total timeout).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
