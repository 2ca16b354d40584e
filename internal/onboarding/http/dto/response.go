// Package dto provides data transfer objects for the onboarding endpoints.
package dto

import (
	onboardingDomain "github.com/fraservotes/console/internal/onboarding/domain"
	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
	"github.com/fraservotes/console/internal/route"
)

// StepResponse is the step currently shown.
type StepResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// OnboardingResponse is the onboarding view state.
type OnboardingResponse struct {
	State          string            `json:"state"`
	StepIndex      int               `json:"step_index"`
	StepCount      int               `json:"step_count"`
	Step           *StepResponse     `json:"step,omitempty"`
	NextLabel      string            `json:"next_label,omitempty"`
	LoadingMessage string            `json:"loading_message,omitempty"`
	Navigation     *route.Navigation `json:"navigation,omitempty"`
}

// MapViewToResponse converts a use case view into its response form.
func MapViewToResponse(view *onboardingUseCase.View) OnboardingResponse {
	snap := view.Snapshot
	response := OnboardingResponse{
		State:      string(snap.State),
		StepIndex:  snap.StepIndex,
		StepCount:  snap.StepCount,
		Navigation: view.Navigate,
	}

	switch snap.State {
	case onboardingDomain.StateLoading:
		response.LoadingMessage = onboardingDomain.LoadingMessage
	case onboardingDomain.StateStep:
		if snap.Step != nil {
			response.Step = &StepResponse{
				Title:       snap.Step.Title,
				Description: snap.Step.Description,
				Image:       snap.Step.Image,
			}
		}
		response.NextLabel = "Next"
		if snap.IsLastStep() {
			response.NextLabel = "Get Started"
		}
	}

	return response
}
