// Package shared holds the error taxonomy used across modules.
package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated indicates a missing, malformed, or invalid token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates an authenticated caller lacking the required grant.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation indicates malformed input shape.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound indicates a referenced entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCreationFailed indicates a storage insert violated an invariant.
	ErrCreationFailed = errors.New("creation failed")
)

// classifiedError pairs a taxonomy category with a client-safe message.
// The message is the only text ever shown to callers.
type classifiedError struct {
	category error
	message  string
}

func (e *classifiedError) Error() string { return e.message }

func (e *classifiedError) Unwrap() error { return e.category }

// Errorf builds an error classified under category. The formatted message
// must contain no internal detail; it is rendered verbatim in responses.
func Errorf(category error, format string, args ...any) error {
	return &classifiedError{category: category, message: fmt.Sprintf(format, args...)}
}
