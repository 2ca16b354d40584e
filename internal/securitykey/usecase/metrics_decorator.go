package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/metrics"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

type securityKeyUseCaseWithMetrics struct {
	next    SecurityKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewSecurityKeyUseCaseWithMetrics wraps a SecurityKeyUseCase with metrics recording.
// An action that returns an error notice counts as an error.
func NewSecurityKeyUseCaseWithMetrics(useCase SecurityKeyUseCase, m metrics.BusinessMetrics) SecurityKeyUseCase {
	return &securityKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *securityKeyUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	view *View,
	err error,
) {
	status := "success"
	switch {
	case err != nil:
		status = "error"
	case view != nil && view.Restricted:
		status = "restricted"
	case view != nil && view.Notice != nil && view.Notice.IsError():
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "securitykey", operation, status)
	s.metrics.RecordDuration(ctx, "securitykey", operation, time.Since(start), status)
}

func (s *securityKeyUseCaseWithMetrics) View(ctx context.Context, session sessionDomain.Session) (*View, error) {
	start := time.Now()
	view, err := s.next.View(ctx, session)
	s.record(ctx, "view", start, view, err)
	return view, err
}

func (s *securityKeyUseCaseWithMetrics) Create(
	ctx context.Context,
	session sessionDomain.Session,
	input *securityKeyDomain.CreateInput,
) (*View, error) {
	start := time.Now()
	view, err := s.next.Create(ctx, session, input)
	s.record(ctx, "create", start, view, err)
	return view, err
}

func (s *securityKeyUseCaseWithMetrics) SelectForRemoval(
	ctx context.Context,
	session sessionDomain.Session,
	keyID uuid.UUID,
) (*View, error) {
	start := time.Now()
	view, err := s.next.SelectForRemoval(ctx, session, keyID)
	s.record(ctx, "select_removal", start, view, err)
	return view, err
}

func (s *securityKeyUseCaseWithMetrics) CancelRemoval(
	ctx context.Context,
	session sessionDomain.Session,
) (*View, error) {
	start := time.Now()
	view, err := s.next.CancelRemoval(ctx, session)
	s.record(ctx, "cancel_removal", start, view, err)
	return view, err
}

func (s *securityKeyUseCaseWithMetrics) ConfirmRemoval(
	ctx context.Context,
	session sessionDomain.Session,
	keyID uuid.UUID,
) (*View, error) {
	start := time.Now()
	view, err := s.next.ConfirmRemoval(ctx, session, keyID)
	s.record(ctx, "confirm_removal", start, view, err)
	return view, err
}
