package services

import (
	"errors"
	"fmt"
)

// Every operation fails synchronously with one of these kinds; callers
// surface them as user-visible messages, none are fatal.
var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
	ErrIneligible         = errors.New("order contains out-of-stock items")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ValidationError rejects a single field of a submitted form. It carries
// the field name so the caller can point at the offending input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
