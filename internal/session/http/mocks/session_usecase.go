// Package mocks provides mock implementations for testing session HTTP handlers
// and the packages that depend on the session provider.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// MockSessionUseCase is a mock implementation of SessionUseCase.
type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.LoginOutput), args.Error(1)
}

func (m *MockSessionUseCase) Authenticate(ctx context.Context, tokenHash string) (sessionDomain.Session, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(sessionDomain.Session), args.Error(1)
}

func (m *MockSessionUseCase) Logout(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockSessionUseCase) CreateUser(
	ctx context.Context,
	input *sessionDomain.CreateUserInput,
) (*sessionDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.User), args.Error(1)
}
