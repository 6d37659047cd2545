// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package audit

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

// Log file names within the audit directory. Auth attempts and logouts
// share one file; security events rotate daily by name only (the writer
// still never reopens old files for anything but append).
const (
	authLogFile       = "auth.log"
	dataAccessLogFile = "data_access.log"
	securityLogPrefix = "security_"
)

// timestampLayout is the display form every record timestamp is written in,
// rendered in the configured timezone.
const timestampLayout = "2006-01-02 15:04:05"

// Well-known security event names recorded via SecurityEvent.
const (
	EventUserLogout            = "user_logout"
	EventRateLimitExceeded     = "rate_limit_exceeded"
	EventCSRFValidationFailed  = "csrf_validation_failed"
	EventUnauthorizedLogAccess = "unauthorized_log_access"
)

// Logger appends structured audit records to category-specific files.
// All methods are best-effort: failures are logged at debug level on the
// application logger and otherwise swallowed.
type Logger struct {
	dir                  string
	loc                  *time.Location
	disableLoginAttempts bool
	disableDataAccess    bool

	log *logger.Logger
	now func() time.Time
}

// NewLogger constructs an audit Logger for the configured directory and
// timezone. An unknown timezone falls back to UTC (configuration validation
// rejects it earlier in normal startup).
func NewLogger(cfg config.Logs, log *logger.Logger) *Logger {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &Logger{
		dir:                  cfg.Dir,
		loc:                  loc,
		disableLoginAttempts: cfg.DisableLoginAttempts,
		disableDataAccess:    cfg.DisableDataAccess,
		log:                  log,
		now:                  time.Now,
	}
}

// AuthAttempt records one login attempt. Disabled entirely by the
// login-attempt toggle.
func (a *Logger) AuthAttempt(username, ip string, success bool, userAgent, sessionID string) {
	if a.disableLoginAttempts {
		return
	}

	outcome := models.AuthFailed
	if success {
		outcome = models.AuthSuccess
	}

	a.append(authLogFile, models.AuthAttemptRecord{
		Timestamp: a.timestamp(),
		Type:      models.RecordAuthAttempt,
		Username:  username,
		IP:        ip,
		Success:   outcome,
		UserAgent: userAgent,
		SessionID: sessionID,
	})
}

// Logout records a session termination with the given reason
// (models.LogoutManual or models.LogoutTimeout). Shares the login-attempt
// toggle, as in the original deployment.
func (a *Logger) Logout(username, ip, reason, sessionID string) {
	if a.disableLoginAttempts {
		return
	}

	a.append(authLogFile, models.LogoutRecord{
		Timestamp: a.timestamp(),
		Type:      models.RecordLogout,
		Username:  username,
		IP:        ip,
		Reason:    reason,
		SessionID: sessionID,
	})
}

// DataAccess records one protected data read.
func (a *Logger) DataAccess(username, ip, endpoint, dateRange string, recordCount int, sessionID, userAgent string) {
	if a.disableDataAccess {
		return
	}

	a.append(dataAccessLogFile, models.DataAccessRecord{
		Timestamp:   a.timestamp(),
		Type:        models.RecordDataAccess,
		Username:    username,
		IP:          ip,
		Endpoint:    endpoint,
		DateRange:   dateRange,
		RecordCount: recordCount,
		SessionID:   sessionID,
		UserAgent:   userAgent,
	})
}

// SecurityEvent records a generic security event into the date-stamped
// security log. Level defaults to INFO when empty.
func (a *Logger) SecurityEvent(event, level, ip, userAgent, sessionID string, details map[string]any) {
	if level == "" {
		level = "INFO"
	}

	file := securityLogPrefix + a.now().In(a.loc).Format("2006-01-02") + ".log"
	a.append(file, models.SecurityEventRecord{
		Timestamp: a.timestamp(),
		Level:     level,
		Event:     event,
		IP:        ip,
		UserAgent: userAgent,
		SessionID: sessionID,
		Details:   details,
	})
}

func (a *Logger) timestamp() string {
	return a.now().In(a.loc).Format(timestampLayout)
}

// append marshals record and appends it plus a trailing newline to the named
// file, creating the directory on first use. Every failure path is swallowed
// after a debug note: audit logging never fails the primary operation.
func (a *Logger) append(file string, record any) {
	data, err := json.Marshal(record)
	if err != nil {
		a.log.Debug().Err(err).Str("file", file).Msg("audit record marshal failed")
		return
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		a.log.Debug().Err(err).Str("dir", a.dir).Msg("audit dir creation failed")
		return
	}

	f, err := os.OpenFile(filepath.Join(a.dir, file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		a.log.Debug().Err(err).Str("file", file).Msg("audit log open failed")
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		a.log.Debug().Err(err).Str("file", file).Msg("audit log write failed")
	}
}
