package interfaces

import "errors"

// Storage-level outcomes that repositories report and use cases translate.
var (
	ErrConditionFailed       = errors.New("conditional write failed")
	ErrInsufficientAvailable = errors.New("budget available amount is insufficient")
	ErrReservationNotActive  = errors.New("reservation is not active")
)
