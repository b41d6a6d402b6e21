package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks a local validation failure. These never reach the
// network and the user may retry immediately.
var ErrValidation = errors.New("validation failed")

// ErrActionInFlight rejects a trigger whose previous request is still
// outstanding for the same session.
var ErrActionInFlight = errors.New("action already in flight")

// NewValidationError wraps a user-facing message as a validation error.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
