package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *sessionDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*sessionDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*sessionDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.User), args.Error(1)
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

type mockTokenRepository struct {
	mock.Mock
}

func (m *mockTokenRepository) Create(ctx context.Context, token *sessionDomain.SessionToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.SessionToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.SessionToken), args.Error(1)
}

func (m *mockTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, tokenID, at)
	return args.Error(0)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Compare(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) HashToken(plainToken string) string {
	args := m.Called(plainToken)
	return args.String(0)
}

// passthroughTxManager runs fn without a real transaction.
type passthroughTxManager struct {
	calls int
}

func (p *passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) AdjustInFlight(ctx context.Context, domain, kind string, delta int64) {
	m.Called(ctx, domain, kind, delta)
}

type mockSessionUseCase struct {
	mock.Mock
}

func (m *mockSessionUseCase) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.LoginOutput), args.Error(1)
}

func (m *mockSessionUseCase) Authenticate(ctx context.Context, tokenHash string) (sessionDomain.Session, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(sessionDomain.Session), args.Error(1)
}

func (m *mockSessionUseCase) Logout(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *mockSessionUseCase) CreateUser(
	ctx context.Context,
	input *sessionDomain.CreateUserInput,
) (*sessionDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.User), args.Error(1)
}
