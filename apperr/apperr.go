// Package apperr defines the error taxonomy shared by all use cases.
// Controllers translate these sentinels into HTTP status codes; anything
// unrecognized is treated as a 500 and never leaks its text to the client.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyProcessed means a pending row was already approved or rejected.
	ErrAlreadyProcessed = errors.New("already processed")
	// ErrForbidden means the caller's role or ownership check failed.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized means the caller has no valid session.
	ErrUnauthorized = errors.New("unauthorized")
)

// ForbiddenError carries a user-facing message for a 403 response.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string { return e.Msg }

// Is lets errors.Is(err, ErrForbidden) match any ForbiddenError.
func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// Forbidden builds a ForbiddenError with a formatted message.
func Forbidden(format string, args ...any) error {
	return &ForbiddenError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError carries a user-facing message for a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
