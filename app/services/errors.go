package services

import "errors"

// Every recoverable condition a service can report belongs to one of these
// classes. Handlers translate them to HTTP statuses with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidState     = errors.New("invalid state")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrDuplicate        = errors.New("already exists")
	ErrValidation       = errors.New("invalid input")
)
