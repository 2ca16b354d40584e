// Package mocks provides mock implementations for testing security key HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	securityKeyUseCase "github.com/fraservotes/console/internal/securitykey/usecase"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// MockSecurityKeyUseCase is a mock implementation of SecurityKeyUseCase.
type MockSecurityKeyUseCase struct {
	mock.Mock
}

func (m *MockSecurityKeyUseCase) view(args mock.Arguments) (*securityKeyUseCase.View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*securityKeyUseCase.View), args.Error(1)
}

func (m *MockSecurityKeyUseCase) View(
	ctx context.Context,
	s sessionDomain.Session,
) (*securityKeyUseCase.View, error) {
	return m.view(m.Called(ctx, s))
}

func (m *MockSecurityKeyUseCase) Create(
	ctx context.Context,
	s sessionDomain.Session,
	input *securityKeyDomain.CreateInput,
) (*securityKeyUseCase.View, error) {
	return m.view(m.Called(ctx, s, input))
}

func (m *MockSecurityKeyUseCase) SelectForRemoval(
	ctx context.Context,
	s sessionDomain.Session,
	keyID uuid.UUID,
) (*securityKeyUseCase.View, error) {
	return m.view(m.Called(ctx, s, keyID))
}

func (m *MockSecurityKeyUseCase) CancelRemoval(
	ctx context.Context,
	s sessionDomain.Session,
) (*securityKeyUseCase.View, error) {
	return m.view(m.Called(ctx, s))
}

func (m *MockSecurityKeyUseCase) ConfirmRemoval(
	ctx context.Context,
	s sessionDomain.Session,
	keyID uuid.UUID,
) (*securityKeyUseCase.View, error) {
	return m.view(m.Called(ctx, s, keyID))
}
