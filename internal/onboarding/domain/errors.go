package domain

import (
	apperrors "github.com/fraservotes/console/internal/errors"
)

var (
	// ErrNotReady is returned for step actions while assets are still loading.
	ErrNotReady = apperrors.Wrap(apperrors.ErrConflict, "onboarding assets are still loading")

	// ErrFlowNotFound is returned when no flow exists for the device.
	ErrFlowNotFound = apperrors.Wrap(apperrors.ErrNotFound, "onboarding flow not found")
)
