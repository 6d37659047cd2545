package auth

import "errors"

var (
	// ErrMalformedHash indicates a stored secret that is not a valid PHC
	// Argon2id string. Verification treats it as a failed match.
	ErrMalformedHash = errors.New("malformed argon2id hash")

	// ErrIncompatibleHashVersion indicates a PHC string produced by an
	// Argon2 version this build does not implement.
	ErrIncompatibleHashVersion = errors.New("incompatible argon2 version")
)
