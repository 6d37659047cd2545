package session

import "errors"

var (
	// ErrSessionNotFound indicates an unknown or already-destroyed session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired indicates a session past its idle timeout. By the
	// time a caller sees this error the session has been destroyed and the
	// timeout has been audit-logged.
	ErrSessionExpired = errors.New("session expired")
)
