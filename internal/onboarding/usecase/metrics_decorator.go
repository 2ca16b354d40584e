package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/metrics"
)

type onboardingUseCaseWithMetrics struct {
	next    OnboardingUseCase
	metrics metrics.BusinessMetrics
}

// NewOnboardingUseCaseWithMetrics wraps an OnboardingUseCase with metrics recording.
func NewOnboardingUseCaseWithMetrics(useCase OnboardingUseCase, m metrics.BusinessMetrics) OnboardingUseCase {
	return &onboardingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *onboardingUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "onboarding", operation, status)
	o.metrics.RecordDuration(ctx, "onboarding", operation, time.Since(start), status)
}

func (o *onboardingUseCaseWithMetrics) Start(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	start := time.Now()
	view, err := o.next.Start(ctx, deviceID)
	o.record(ctx, "start", start, err)
	return view, err
}

func (o *onboardingUseCaseWithMetrics) Next(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	start := time.Now()
	view, err := o.next.Next(ctx, deviceID)
	o.record(ctx, "next", start, err)
	return view, err
}

func (o *onboardingUseCaseWithMetrics) Skip(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	start := time.Now()
	view, err := o.next.Skip(ctx, deviceID)
	o.record(ctx, "skip", start, err)
	return view, err
}

func (o *onboardingUseCaseWithMetrics) Close(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	start := time.Now()
	view, err := o.next.Close(ctx, deviceID)
	o.record(ctx, "close", start, err)
	return view, err
}
