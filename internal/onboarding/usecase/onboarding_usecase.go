package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/fraservotes/console/internal/metrics"
	onboardingDomain "github.com/fraservotes/console/internal/onboarding/domain"
	onboardingService "github.com/fraservotes/console/internal/onboarding/service"
	"github.com/fraservotes/console/internal/route"
)

// Config configures the onboarding flow store.
type Config struct {
	Steps []onboardingDomain.Step
	// FlowTTL is how long an untouched flow lives before eviction.
	FlowTTL time.Duration
	// CleanupInterval is how often expired flows are evicted. Zero disables eviction
	// until Shutdown.
	CleanupInterval time.Duration
}

type flowEntry struct {
	flow   *onboardingDomain.Flow
	cancel context.CancelFunc
}

// OnboardingService is the onboarding use case plus lifecycle control.
type OnboardingService struct {
	steps     []onboardingDomain.Step
	flowTTL   time.Duration
	flows     *gocache.Cache
	startMu   sync.Mutex
	wg        sync.WaitGroup
	stopEvict context.CancelFunc
	repo      CompletionRepository
	preloader onboardingService.AssetPreloader
	metrics   metrics.BusinessMetrics
	logger    *slog.Logger
}

func key(deviceID uuid.UUID) string {
	return deviceID.String()
}

func (o *OnboardingService) Start(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	o.startMu.Lock()
	defer o.startMu.Unlock()

	if entry, ok := o.lookup(deviceID); ok {
		return &View{Snapshot: entry.flow.Snapshot()}, nil
	}

	completed, err := o.repo.IsCompleted(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if completed {
		nav := route.ReplaceWith(route.Home)
		return &View{
			Snapshot: onboardingDomain.CompletedSnapshot(len(o.steps)),
			Navigate: &nav,
		}, nil
	}

	flowCtx, cancel := context.WithCancel(context.Background())
	entry := &flowEntry{flow: onboardingDomain.NewFlow(o.steps), cancel: cancel}
	// Drop any expired entry still held by the cache so its eviction hook runs.
	o.remove(deviceID)
	o.flows.Set(key(deviceID), entry, o.flowTTL)
	o.metrics.AdjustInFlight(ctx, "onboarding", "flow", 1)

	o.wg.Add(1)
	go o.preload(flowCtx, deviceID, entry)

	return &View{Snapshot: entry.flow.Snapshot()}, nil
}

func (o *OnboardingService) preload(ctx context.Context, deviceID uuid.UUID, entry *flowEntry) {
	defer o.wg.Done()

	if err := o.preloader.Preload(ctx, onboardingDomain.Images(o.steps)); err != nil || ctx.Err() != nil {
		// The flow was torn down; its result is discarded.
		return
	}

	if eff, ok := entry.flow.AssetsSettled(); ok && eff.Completed {
		o.persist(context.Background(), deviceID)
		o.remove(deviceID)
	}
}

func (o *OnboardingService) Next(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return o.transition(ctx, deviceID, (*onboardingDomain.Flow).Next)
}

func (o *OnboardingService) Skip(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return o.transition(ctx, deviceID, (*onboardingDomain.Flow).Skip)
}

func (o *OnboardingService) Close(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	return o.transition(ctx, deviceID, (*onboardingDomain.Flow).Close)
}

func (o *OnboardingService) transition(
	ctx context.Context,
	deviceID uuid.UUID,
	action func(*onboardingDomain.Flow) (onboardingDomain.Effect, error),
) (*View, error) {
	entry, ok := o.lookup(deviceID)
	if !ok {
		completed, err := o.repo.IsCompleted(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		if completed {
			return &View{Snapshot: onboardingDomain.CompletedSnapshot(len(o.steps))}, nil
		}
		return nil, onboardingDomain.ErrFlowNotFound
	}

	eff, err := action(entry.flow)
	if err != nil {
		return nil, err
	}

	view := &View{Snapshot: entry.flow.Snapshot(), Navigate: eff.Navigate}

	if eff.Completed {
		o.persist(ctx, deviceID)
		o.remove(deviceID)
		return view, nil
	}

	if view.Snapshot.State != onboardingDomain.StateCompleted {
		// Sliding expiry; a flow removed concurrently stays removed.
		_ = o.flows.Replace(key(deviceID), entry, o.flowTTL)
	}
	return view, nil
}

// persist writes the completion flag. A failed write leaves the device to see
// onboarding again on its next visit; navigation still proceeds.
func (o *OnboardingService) persist(ctx context.Context, deviceID uuid.UUID) {
	if err := o.repo.Complete(ctx, deviceID, time.Now().UTC()); err != nil {
		o.logger.Error("failed to persist onboarding completion",
			slog.String("device_id", deviceID.String()),
			slog.Any("error", err),
		)
	}
}

func (o *OnboardingService) lookup(deviceID uuid.UUID) (*flowEntry, bool) {
	v, ok := o.flows.Get(key(deviceID))
	if !ok {
		return nil, false
	}
	return v.(*flowEntry), true
}

func (o *OnboardingService) remove(deviceID uuid.UUID) {
	o.flows.Delete(key(deviceID))
}

func (o *OnboardingService) onEvicted(_ string, v interface{}) {
	entry := v.(*flowEntry)
	entry.cancel()
	o.metrics.AdjustInFlight(context.Background(), "onboarding", "flow", -1)
}

// evictExpired removes flows whose TTL has elapsed, cancelling their preloads.
func (o *OnboardingService) evictExpired() {
	o.flows.DeleteExpired()
}

func (o *OnboardingService) evictLoop(ctx context.Context, interval time.Duration) {
	defer o.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.evictExpired()
		}
	}
}

// Shutdown stops eviction, cancels every flow and waits for in-flight preloads
// to return.
func (o *OnboardingService) Shutdown(ctx context.Context) error {
	o.stopEvict()
	o.flows.DeleteExpired()
	for k := range o.flows.Items() {
		o.flows.Delete(k)
	}

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewOnboardingService creates the onboarding use case.
func NewOnboardingService(
	cfg Config,
	repo CompletionRepository,
	preloader onboardingService.AssetPreloader,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *OnboardingService {
	o := &OnboardingService{
		steps:     cfg.Steps,
		flowTTL:   cfg.FlowTTL,
		flows:     gocache.New(cfg.FlowTTL, 0),
		repo:      repo,
		preloader: preloader,
		metrics:   businessMetrics,
		logger:    logger,
	}
	o.flows.OnEvicted(o.onEvicted)

	// Eviction runs on a loop owned here rather than go-cache's janitor, so
	// Shutdown can stop it.
	evictCtx, cancel := context.WithCancel(context.Background())
	o.stopEvict = cancel
	if cfg.CleanupInterval > 0 {
		o.wg.Add(1)
		go o.evictLoop(evictCtx, cfg.CleanupInterval)
	}
	return o
}
