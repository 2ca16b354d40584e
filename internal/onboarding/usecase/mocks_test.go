package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockCompletionRepository struct {
	mock.Mock
}

func (m *mockCompletionRepository) Complete(ctx context.Context, deviceID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, deviceID, at)
	return args.Error(0)
}

func (m *mockCompletionRepository) IsCompleted(ctx context.Context, deviceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, deviceID)
	return args.Bool(0), args.Error(1)
}

// gatedPreloader blocks until released or cancelled.
type gatedPreloader struct {
	release   chan struct{}
	calls     atomic.Int32
	cancelled atomic.Int32
}

func newGatedPreloader() *gatedPreloader {
	return &gatedPreloader{release: make(chan struct{})}
}

func (p *gatedPreloader) Preload(ctx context.Context, assets []string) error {
	p.calls.Add(1)
	select {
	case <-p.release:
		return nil
	case <-ctx.Done():
		p.cancelled.Add(1)
		return ctx.Err()
	}
}

type settledPreloader struct{}

func (settledPreloader) Preload(ctx context.Context, assets []string) error {
	return nil
}

// gaugeMetrics tracks AdjustInFlight and the recorded operations.
type gaugeMetrics struct {
	mu         sync.Mutex
	inFlight   int64
	operations []string
}

func (g *gaugeMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.operations = append(g.operations, domain+"/"+operation+"/"+status)
}

func (g *gaugeMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (g *gaugeMetrics) AdjustInFlight(ctx context.Context, domain, kind string, delta int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight += delta
}

func (g *gaugeMetrics) InFlight() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight
}

func (g *gaugeMetrics) Operations() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.operations...)
}

type mockOnboardingUseCase struct {
	mock.Mock
}

func (m *mockOnboardingUseCase) view(args mock.Arguments) (*View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*View), args.Error(1)
}

func (m *mockOnboardingUseCase) Start(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return m.view(m.Called(ctx, deviceID))
}

func (m *mockOnboardingUseCase) Next(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return m.view(m.Called(ctx, deviceID))
}

func (m *mockOnboardingUseCase) Skip(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return m.view(m.Called(ctx, deviceID))
}

func (m *mockOnboardingUseCase) Close(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return m.view(m.Called(ctx, deviceID))
}
