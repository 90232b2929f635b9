package repo

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// with errors.Is and translate to their own boundary (HTTP status, event).
var (
	// ErrItemNotFound is returned when no item exists for the given ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidQuantityChange is returned when an adjustment would take
	// the quantity below zero. The stored quantity is left untouched.
	ErrInvalidQuantityChange = errors.New("quantity cannot be negative")

	// ErrQuantityOutOfRange is returned when an adjustment would exceed
	// the quantity ceiling.
	ErrQuantityOutOfRange = errors.New("quantity exceeds maximum")

	// ErrDuplicatedValueUnique is returned on unique constraint violations.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
