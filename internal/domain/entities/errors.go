package entities

import "errors"

// Domain error kinds. Every failure raised by this package wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnknownKind       = errors.New("unknown kind")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrQuotaExceeded     = errors.New("quota exceeded")
)
