// Package mocks provides mock implementations for testing onboarding HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
)

// MockOnboardingUseCase is a mock implementation of OnboardingUseCase.
type MockOnboardingUseCase struct {
	mock.Mock
}

func (m *MockOnboardingUseCase) view(args mock.Arguments) (*onboardingUseCase.View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboardingUseCase.View), args.Error(1)
}

func (m *MockOnboardingUseCase) Start(ctx context.Context, deviceID uuid.UUID) (*onboardingUseCase.View, error) {
	return m.view(m.Called(ctx, deviceID))
}

func (m *MockOnboardingUseCase) Next(ctx context.Context, deviceID uuid.UUID) (*onboardingUseCase.View, error) {
	return m.view(m.Called(ctx, deviceID))
}

func (m *MockOnboardingUseCase) Skip(ctx context.Context, deviceID uuid.UUID) (*onboardingUseCase.View, error) {
	return m.view(m.Called(ctx, deviceID))
}

func (m *MockOnboardingUseCase) Close(ctx context.Context, deviceID uuid.UUID) (*onboardingUseCase.View, error) {
	return m.view(m.Called(ctx, deviceID))
}
