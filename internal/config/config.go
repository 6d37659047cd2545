// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// booking-admin application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - validate  — go-playground/validator rules checked on the merged result.
type StructuredConfig struct {
	// App holds application-level settings: the shared secret, the
	// credential list, and the log-viewer allowlist.
	App App `envPrefix:"APP_"`

	// Session holds session-lifetime and session-store settings.
	Session Session `envPrefix:"SESSION_"`

	// Server holds network address settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Logs holds the audit-log directory, timezone, and per-category
	// logging toggles.
	Logs Logs `envPrefix:"LOGS_"`

	// RateLimit holds the file-based limiter settings.
	RateLimit RateLimit `envPrefix:"RATELIMIT_"`

	// Upstream holds the booking API endpoint and its timeout budget.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the
// credential list and authorization.
type App struct {
	// Secret is the application-wide keying suffix appended to every
	// password before hashing or verification. Must be kept confidential.
	// Env: APP_SECRET
	Secret string `env:"SECRET"`

	// Users is the delimited credential list, `username:secret` pairs
	// separated by `|` or `,`. See auth.ParseUsers for the delimiter rules.
	// Env: APP_USERS
	Users string `env:"USERS"`

	// UseHashedPasswords marks the secrets in Users (and the legacy slots)
	// as already PHC-encoded Argon2id hashes rather than plaintext.
	// Env: APP_USE_HASHED_PASSWORDS
	UseHashedPasswords bool `env:"USE_HASHED_PASSWORDS"`

	// AdminPassword and ManagerPassword are the legacy single-user slots
	// used only when Users yields no credentials.
	// Env: APP_ADMIN_PASSWORD, APP_MANAGER_PASSWORD
	AdminPassword   string `env:"ADMIN_PASSWORD"`
	ManagerPassword string `env:"MANAGER_PASSWORD"`

	// LogViewers is the list of usernames allowed to read audit logs.
	// Env: APP_LOG_VIEWERS (comma-separated)
	LogViewers []string `env:"LOG_VIEWERS"`
}

// Session holds session-lifecycle settings.
type Session struct {
	// Timeout is the idle timeout measured from the last credential
	// verification (e.g. "30m"). Expired sessions are destroyed and the
	// expiry is audit-logged.
	// Env: SESSION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"min=1s"`

	// RegenerationInterval controls how often the session ID is rotated to
	// mitigate fixation, independent of Timeout.
	// Env: SESSION_REGENERATION_INTERVAL
	RegenerationInterval time.Duration `env:"REGENERATION_INTERVAL" validate:"min=1s"`

	// StorePath is the SQLite file backing the server-side session store.
	// Env: SESSION_STORE_PATH
	StorePath string `env:"STORE_PATH" validate:"required"`

	// CookieName names the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME" validate:"required"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`
}

// Logs holds audit-log settings.
type Logs struct {
	// Dir is the directory holding the append-only log files
	// (auth.log, data_access.log, security_<date>.log, ...).
	// Env: LOGS_DIR
	Dir string `env:"DIR" validate:"required"`

	// Timezone is the IANA zone used when formatting record timestamps.
	// Env: LOGS_TIMEZONE
	Timezone string `env:"TIMEZONE" validate:"required"`

	// DisableLoginAttempts turns off auth_attempt and logout records.
	// Env: LOGS_DISABLE_LOGIN_ATTEMPTS
	DisableLoginAttempts bool `env:"DISABLE_LOGIN_ATTEMPTS"`

	// DisableDataAccess turns off data_access records.
	// Env: LOGS_DISABLE_DATA_ACCESS
	DisableDataAccess bool `env:"DISABLE_DATA_ACCESS"`
}

// RateLimit holds settings for the file-based sliding-window limiter.
type RateLimit struct {
	// Dir is the directory holding per-identifier state files.
	// Env: RATELIMIT_DIR
	Dir string `env:"DIR" validate:"required"`

	// Requests is the admission cap per identifier per Window.
	// Env: RATELIMIT_REQUESTS
	Requests int `env:"REQUESTS" validate:"min=1"`

	// Window is the trailing window duration (e.g. "60s").
	// Env: RATELIMIT_WINDOW
	Window time.Duration `env:"WINDOW" validate:"min=1s"`
}

// Upstream holds settings for the outbound booking API call.
type Upstream struct {
	// URL is the booking API endpoint. The proxy refuses to run without it.
	// Env: UPSTREAM_API_URL
	URL string `env:"API_URL"`

	// Timeout bounds the whole outbound request (e.g. "30s").
	// Env: UPSTREAM_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"min=1s"`

	// ConnectTimeout bounds connection establishment (e.g. "10s").
	// Env: UPSTREAM_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" validate:"min=1s"`

	// MaxDateRangeDays caps the span of a single booking query.
	// Env: UPSTREAM_MAX_DATE_RANGE_DAYS
	MaxDateRangeDays int `env:"MAX_DATE_RANGE_DAYS" validate:"min=1"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (with an optional .env file loaded first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
