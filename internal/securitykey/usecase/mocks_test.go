package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
)

type mockRegistry struct {
	mock.Mock
}

func (m *mockRegistry) List(ctx context.Context) ([]*securityKeyDomain.SecurityKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*securityKeyDomain.SecurityKey), args.Error(1)
}

func (m *mockRegistry) Register(ctx context.Context, key *securityKeyDomain.SecurityKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRegistry) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingMetrics struct {
	mu         sync.Mutex
	inFlight   int64
	operations []string
}

func (r *recordingMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, domain+"/"+operation+"/"+status)
}

func (r *recordingMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (r *recordingMetrics) AdjustInFlight(ctx context.Context, domain, kind string, delta int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight += delta
}

func (r *recordingMetrics) InFlight() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight
}
