// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

// logsService reads audit log files back for the admin UI and records every
// read as a data access event of its own.
type logsService struct {
	reader   *audit.Reader
	auditLog *audit.Logger
	logger   *logger.Logger
}

// NewLogsService constructs a LogsService over an audit Reader.
func NewLogsService(reader *audit.Reader, auditLog *audit.Logger, logger *logger.Logger) LogsService {
	return &logsService{
		reader:   reader,
		auditLog: auditLog,
		logger:   logger,
	}
}

// Query returns one page of audit records for logType ("auth" or
// "data_access", empty defaults to "auth"). Limit and offset outside the
// supported ranges are clamped, not rejected.
func (l *logsService) Query(ctx context.Context, rc models.RequestContext, logType string, limit, offset int) (models.LogQueryResult, error) {
	log := logger.FromContext(ctx)

	category, err := audit.ParseCategory(logType)
	if err != nil {
		if errors.Is(err, audit.ErrInvalidCategory) {
			return models.LogQueryResult{}, ErrInvalidLogType
		}
		return models.LogQueryResult{}, err
	}

	result, err := l.reader.Read(category, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("category", string(category)).Msg("audit log read failed")
		return models.LogQueryResult{}, err
	}

	l.auditLog.DataAccess(
		rc.Username,
		rc.IP,
		"/api/logs",
		fmt.Sprintf("type=%s, offset=%d, limit=%d", category, offset, limit),
		len(result.Data),
		rc.SessionID,
		rc.UserAgent,
	)

	return result, nil
}
