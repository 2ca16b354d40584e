package domain

import (
	"github.com/fraservotes/console/internal/errors"
)

// Session and identity errors.
var (
	// ErrUserNotFound indicates no user matches the lookup.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the email is already registered.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrTokenNotFound indicates no session token matches the hash.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "session token not found")

	// ErrInvalidCredentials covers unknown emails, wrong passwords and unusable tokens alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrUserInactive indicates the user exists but has been deactivated.
	ErrUserInactive = errors.Wrap(errors.ErrForbidden, "user is inactive")

	// ErrInvalidRole indicates a role string outside user, admin and superadmin.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
