// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package audit

import (
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/weisetech/booking-admin/models"
)

// Category selects which audit log a read targets.
type Category string

const (
	// CategoryAuth covers auth_attempt and logout records (auth.log).
	CategoryAuth Category = "auth"
	// CategoryDataAccess covers data_access records (data_access.log).
	CategoryDataAccess Category = "data_access"
)

// Pagination bounds for log reads.
const (
	defaultLimit = 100
	maxLimit     = 1000
)

// ParseCategory validates a client-supplied category string. An empty string
// defaults to CategoryAuth.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "":
		return CategoryAuth, nil
	case CategoryAuth:
		return CategoryAuth, nil
	case CategoryDataAccess:
		return CategoryDataAccess, nil
	default:
		return "", ErrInvalidCategory
	}
}

// adjacentRecords matches the boundary between two concatenated JSON
// objects that lost their separating newline.
var adjacentRecords = regexp.MustCompile(`}\s*{`)

// Reader turns append-only audit files back into masked, display-ready rows.
type Reader struct {
	dir string
}

// NewReader constructs a Reader over the given audit directory.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// Read returns one page of the requested category's log, newest first.
//
// limit is clamped to [1,1000] with out-of-range values falling back to the
// default page size of 100; offset is clamped to ≥0. A missing log file is
// an empty result, not an error. Records may be concatenated without
// reliable separators, so `}{` boundaries are normalised to line breaks
// before splitting; lines that fail to parse are skipped silently.
//
// Every string cell is masked where sensitive (session ID, IPv4 last octet)
// and HTML-escaped for safe display.
func (r *Reader) Read(category Category, limit, offset int) (models.LogQueryResult, error) {
	if limit > maxLimit {
		limit = maxLimit
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	result := models.LogQueryResult{Data: [][]any{}}

	content, err := os.ReadFile(filepath.Join(r.dir, r.fileFor(category)))
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}

	lines := splitRecords(string(content))

	// reverse in place: files are append-ordered oldest-first
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}

	result.Total = len(lines)

	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + limit
	if end > len(lines) {
		end = len(lines)
	}

	for _, line := range lines[offset:end] {
		var entry models.LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		result.Data = append(result.Data, projectRow(category, entry))
	}

	result.RecordsFiltered = len(result.Data)
	return result, nil
}

func (r *Reader) fileFor(category Category) string {
	if category == CategoryDataAccess {
		return dataAccessLogFile
	}
	return authLogFile
}

// splitRecords normalises `}{` boundaries into newlines and returns the
// non-empty lines.
func splitRecords(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	content = adjacentRecords.ReplaceAllString(content, "}\n{")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// projectRow builds the fixed column tuple for one record. Auth rows show
// the attempt outcome for auth_attempt records and the reason for logout
// records in the same column.
func projectRow(category Category, entry models.LogEntry) []any {
	maskedSession := MaskSessionID(entry.SessionID)
	maskedIP := MaskIP(entry.IP)

	if category == CategoryDataAccess {
		return []any{
			html.EscapeString(entry.Timestamp),
			html.EscapeString(entry.Username),
			html.EscapeString(maskedIP),
			html.EscapeString(entry.Endpoint),
			html.EscapeString(entry.DateRange),
			entry.RecordCount,
			html.EscapeString(maskedSession),
		}
	}

	outcome := entry.Success
	if outcome == "" {
		outcome = entry.Reason
	}

	return []any{
		html.EscapeString(entry.Timestamp),
		html.EscapeString(entry.Type),
		html.EscapeString(entry.Username),
		html.EscapeString(maskedIP),
		html.EscapeString(outcome),
		html.EscapeString(maskedSession),
	}
}
