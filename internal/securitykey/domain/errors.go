package domain

import (
	apperrors "github.com/fraservotes/console/internal/errors"
)

var (
	// ErrSecurityKeyNotFound indicates the key is not in the registry.
	ErrSecurityKeyNotFound = apperrors.Wrap(apperrors.ErrNotFound, "security key not found")

	// ErrSecurityKeyAlreadyExists indicates a key with the same device name is registered.
	ErrSecurityKeyAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "security key already exists")

	// ErrRemovalNotPending indicates a confirmation for a key that is not pending removal.
	ErrRemovalNotPending = apperrors.Wrap(apperrors.ErrConflict, "security key is not pending removal")

	// ErrInvalidDeviceName indicates a blank device name.
	ErrInvalidDeviceName = apperrors.Wrap(apperrors.ErrInvalidInput, "device name must not be blank")

	// ErrInvalidPurpose indicates an unknown key purpose.
	ErrInvalidPurpose = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid security key purpose")

	// ErrInvalidKeyRole indicates a key role other than admin or superadmin.
	ErrInvalidKeyRole = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid security key role")
)

// RegistryMessage returns the user-facing message for a known registry failure,
// or "" when the caller should use its fallback.
func RegistryMessage(err error) string {
	switch {
	case apperrors.Is(err, ErrSecurityKeyAlreadyExists):
		return "A security key with this name is already registered"
	case apperrors.Is(err, ErrSecurityKeyNotFound):
		return "Security key no longer exists"
	default:
		return ""
	}
}
