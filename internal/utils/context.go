// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, and client address extraction.
package utils

import (
	"context"

	"github.com/weisetech/booking-admin/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session guard stores the
// validated session for downstream handlers.
var SessionCtxKey = contextKey("session")

// RequestCtxKey is the key under which the session guard stores the
// per-request audit context (username, client IP, user agent, session ID).
var RequestCtxKey = contextKey("requestContext")

// GetSessionFromContext retrieves the validated session from the context.
// ok is false when no session guard ran for this request.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(models.Session)
	return sess, ok
}

// GetRequestContext retrieves the per-request audit context.
// ok is false when no session guard ran for this request.
func GetRequestContext(ctx context.Context) (models.RequestContext, bool) {
	rc, ok := ctx.Value(RequestCtxKey).(models.RequestContext)
	return rc, ok
}
