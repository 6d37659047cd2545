// Package session implements the server-side session lifecycle: creation on
// verified login, idle-timeout expiry with audit logging, periodic session-ID
// regeneration against fixation, CSRF token issuance, and explicit
// termination. State lives in a SQLite-backed store keyed by session ID;
// the client holds only the opaque ID in an HTTP-only cookie.
package session
