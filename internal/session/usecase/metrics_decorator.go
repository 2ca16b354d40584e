package usecase

import (
	"context"
	"time"

	"github.com/fraservotes/console/internal/metrics"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *sessionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", operation, status)
	s.metrics.RecordDuration(ctx, "session", operation, time.Since(start), status)
}

func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	start := time.Now()
	output, err := s.next.Login(ctx, input)
	s.record(ctx, "login", start, err)
	return output, err
}

func (s *sessionUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	tokenHash string,
) (sessionDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Authenticate(ctx, tokenHash)
	s.record(ctx, "authenticate", start, err)
	return session, err
}

func (s *sessionUseCaseWithMetrics) Logout(ctx context.Context, tokenHash string) error {
	start := time.Now()
	err := s.next.Logout(ctx, tokenHash)
	s.record(ctx, "logout", start, err)
	return err
}

func (s *sessionUseCaseWithMetrics) CreateUser(
	ctx context.Context,
	input *sessionDomain.CreateUserInput,
) (*sessionDomain.User, error) {
	start := time.Now()
	user, err := s.next.CreateUser(ctx, input)
	s.record(ctx, "user_create", start, err)
	return user, err
}
