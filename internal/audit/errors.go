package audit

import "errors"

var (
	// ErrInvalidCategory indicates a log category outside the fixed enum.
	ErrInvalidCategory = errors.New("invalid log category")
)
