// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package models

// RequestContext carries the ambient request attributes — who is asking,
// from where, with what client — as an explicit value instead of globals.
// Handlers build it once per request; services thread it into audit records.
type RequestContext struct {
	Username  string
	IP        string
	UserAgent string
	SessionID string
}
