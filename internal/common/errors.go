// Package common defines sentinel errors shared by the CoordiNet store,
// services and CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound        = errors.New("not found")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrVersionConflict = errors.New("version conflict")
	ErrCapacityReached = errors.New("capacity reached")
	ErrValidation      = errors.New("validation error")

	// Service-level errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("not signed in")
	ErrSubEventFull       = errors.New("sub-event is already full")
	ErrForbidden          = errors.New("not allowed for the signed-in user")
)
