// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package models

// Audit record kinds. Every record written to an audit log carries one of
// these values in its "type" field, which is the discriminant used when the
// log is read back.
const (
	RecordAuthAttempt = "auth_attempt"
	RecordLogout      = "logout"
	RecordDataAccess  = "data_access"
)

// Auth-attempt outcomes as written to the log. The values are display
// strings, not booleans, so log rows read naturally in the viewer.
const (
	AuthSuccess = "SUCCESS"
	AuthFailed  = "FAILED"
)

// Logout reasons.
const (
	LogoutManual  = "manual"
	LogoutTimeout = "timeout"
)

// AuthAttemptRecord is one login attempt, successful or not.
type AuthAttemptRecord struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Username  string `json:"username"`
	IP        string `json:"ip"`
	Success   string `json:"success"`
	UserAgent string `json:"user_agent"`
	SessionID string `json:"session_id"`
}

// LogoutRecord is one session termination, manual or by idle timeout.
type LogoutRecord struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Username  string `json:"username"`
	IP        string `json:"ip"`
	Reason    string `json:"reason"`
	SessionID string `json:"session_id"`
}

// DataAccessRecord is one protected read of upstream or log data.
type DataAccessRecord struct {
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Username    string `json:"username"`
	IP          string `json:"ip"`
	Endpoint    string `json:"endpoint"`
	DateRange   string `json:"date_range"`
	RecordCount int    `json:"record_count"`
	SessionID   string `json:"session_id"`
	UserAgent   string `json:"user_agent"`
}

// SecurityEventRecord is a free-form security event (rate-limit rejection,
// logout notification, and similar). Details carries event-specific fields.
type SecurityEventRecord struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Event     string         `json:"event"`
	IP        string         `json:"ip"`
	UserAgent string         `json:"user_agent"`
	SessionID string         `json:"session_id"`
	Details   map[string]any `json:"details"`
}

// LogEntry is the loosely-typed shape a log line decodes into when read back
// for display. Fields absent from a given record kind stay at their zero
// value; the reader projects only the columns relevant to the requested
// category.
type LogEntry struct {
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Username    string `json:"username"`
	IP          string `json:"ip"`
	Success     string `json:"success"`
	Reason      string `json:"reason"`
	Endpoint    string `json:"endpoint"`
	DateRange   string `json:"date_range"`
	RecordCount int    `json:"record_count"`
	SessionID   string `json:"session_id"`
	UserAgent   string `json:"user_agent"`
}
