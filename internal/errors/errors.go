// Package errors provides the domain error vocabulary shared by every module.
// Use cases return these (or errors wrapping them); HTTP handlers map them to
// status codes in httputil.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the request does not fit the current state of the resource.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request carries no valid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the session's role does not grant the operation.
	ErrForbidden = errors.New("forbidden")
)

// sentinels is the order in which Kind resolves an error wrapping several.
var sentinels = []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden}

// Kind returns the sentinel err wraps, or nil when err falls outside the
// domain vocabulary.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
