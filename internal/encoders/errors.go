package encoders

import "errors"

// Sentinel errors for encoder lookups.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownCode     = errors.New("unknown code")
	ErrUnknownField    = errors.New("unknown encoder field")
	ErrInvalidClasses  = errors.New("invalid encoder classes")
)
