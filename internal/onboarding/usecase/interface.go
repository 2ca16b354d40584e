// Package usecase coordinates onboarding flows, asset preloading and completion persistence.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	onboardingDomain "github.com/fraservotes/console/internal/onboarding/domain"
	"github.com/fraservotes/console/internal/route"
)

// CompletionRepository persists the per-device completion flag.
type CompletionRepository interface {
	Complete(ctx context.Context, deviceID uuid.UUID, at time.Time) error
	IsCompleted(ctx context.Context, deviceID uuid.UUID) (bool, error)
}

// View is the flow state returned to the client together with any navigation effect.
type View struct {
	Snapshot onboardingDomain.Snapshot
	Navigate *route.Navigation
}

// OnboardingUseCase drives one onboarding flow per device.
type OnboardingUseCase interface {
	// Start returns the device's current flow, creating it and starting the asset
	// preload when none exists. Completed devices get the home navigation instead.
	Start(ctx context.Context, deviceID uuid.UUID) (*View, error)
	Next(ctx context.Context, deviceID uuid.UUID) (*View, error)
	Skip(ctx context.Context, deviceID uuid.UUID) (*View, error)
	Close(ctx context.Context, deviceID uuid.UUID) (*View, error)
}
