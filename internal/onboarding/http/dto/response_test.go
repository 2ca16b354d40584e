package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onboardingDomain "github.com/fraservotes/console/internal/onboarding/domain"
	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
	"github.com/fraservotes/console/internal/route"
)

func TestMapViewToResponse(t *testing.T) {
	steps := onboardingDomain.DefaultSteps()

	t.Run("Loading", func(t *testing.T) {
		response := MapViewToResponse(&onboardingUseCase.View{
			Snapshot: onboardingDomain.Snapshot{State: onboardingDomain.StateLoading, StepCount: 4},
		})

		assert.Equal(t, "loading", response.State)
		assert.Equal(t, "Loading onboarding...", response.LoadingMessage)
		assert.Nil(t, response.Step)
		assert.Empty(t, response.NextLabel)
	})

	t.Run("MiddleStep", func(t *testing.T) {
		response := MapViewToResponse(&onboardingUseCase.View{
			Snapshot: onboardingDomain.Snapshot{
				State: onboardingDomain.StateStep, StepIndex: 1, StepCount: 4, Step: &steps[1],
			},
		})

		require.NotNil(t, response.Step)
		assert.Equal(t, "Check-In Desk", response.Step.Title)
		assert.Equal(t, "Next", response.NextLabel)
	})

	t.Run("LastStep", func(t *testing.T) {
		response := MapViewToResponse(&onboardingUseCase.View{
			Snapshot: onboardingDomain.Snapshot{
				State: onboardingDomain.StateStep, StepIndex: 3, StepCount: 4, Step: &steps[3],
			},
		})

		assert.Equal(t, "Get Started", response.NextLabel)
	})

	t.Run("CompletedWithNavigation", func(t *testing.T) {
		nav := route.ReplaceWith(route.Home)
		response := MapViewToResponse(&onboardingUseCase.View{
			Snapshot: onboardingDomain.CompletedSnapshot(4),
			Navigate: &nav,
		})

		assert.Equal(t, "completed", response.State)
		assert.Equal(t, &nav, response.Navigation)
	})
}
