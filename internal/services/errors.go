// Package services defines the business logic for users, trips, and
// recommendations. This file centralizes the service-level error taxonomy
// so that handlers can map failures to HTTP statuses consistently:
// validation failures to 400, missing lookups to 404, email conflicts to
// 409, and everything else (storage failures included) to 500.
package services

import "errors"

// Sentinel errors for predictable failure cases.
var (
	// ErrValidation is the kind shared by all input validation failures.
	// Concrete failures carry their own message (e.g. "start required")
	// and match this sentinel through errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUserNotFound indicates that no user matches a required lookup
	// (sign-in by email, member batch fetch by id).
	ErrUserNotFound = errors.New("user not found")

	// ErrTripNotFound indicates that the requested trip does not exist.
	ErrTripNotFound = errors.New("trip not found")

	// ErrEmailTaken is returned when sign-up finds an EMAIL marker row
	// already stored under the same key.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError is a validation failure with a caller-facing message.
// It matches ErrValidation under errors.Is so handlers can branch on the
// kind while surfacing the specific message.
type ValidationError struct {
	Msg string
}

// Error returns the caller-facing message.
func (e *ValidationError) Error() string { return e.Msg }

// Is reports whether target is the validation kind sentinel.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// validationErr builds a ValidationError with the given message.
func validationErr(msg string) error { return &ValidationError{Msg: msg} }
