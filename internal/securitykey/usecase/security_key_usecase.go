package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/fraservotes/console/internal/metrics"
	"github.com/fraservotes/console/internal/notice"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

type securityKeyUseCase struct {
	registry   Registry
	removals   *gocache.Cache
	removalTTL time.Duration
	removalMu  sync.Mutex
	metrics    metrics.BusinessMetrics
	logger     *slog.Logger
}

// Restricted is the placeholder view for sessions that may not use the panel.
func Restricted(n *notice.Notice) *View {
	return &View{Restricted: true, Notice: n}
}

// Allowed reports whether the session may use the panel.
func Allowed(s sessionDomain.Session) bool {
	return sessionDomain.Capabilities(s, sessionDomain.RouteContext{}).IsSuperAdmin()
}

// removalKey scopes pending removals to one signed-in session.
func removalKey(s sessionDomain.Session) string {
	return s.TokenID.String()
}

func (u *securityKeyUseCase) removalState(s sessionDomain.Session) securityKeyDomain.RemovalState {
	v, expiresAt, ok := u.removals.GetWithExpiration(removalKey(s))
	if !ok {
		return securityKeyDomain.Idle()
	}
	return securityKeyDomain.PendingConfirmation(v.(uuid.UUID), expiresAt)
}

// refresh re-reads the registry after a mutation. A failed re-read leaves the
// view unrefreshed.
func (u *securityKeyUseCase) refresh(ctx context.Context, view *View) {
	keys, err := u.registry.List(ctx)
	if err != nil {
		u.logger.Error("failed to re-fetch security keys", slog.Any("error", err))
		return
	}
	view.Keys = keys
	view.Refreshed = true
}

func (u *securityKeyUseCase) View(ctx context.Context, s sessionDomain.Session) (*View, error) {
	if !Allowed(s) {
		return Restricted(nil), nil
	}

	keys, err := u.registry.List(ctx)
	if err != nil {
		return nil, err
	}

	return &View{
		Keys:      keys,
		Refreshed: true,
		Removal:   u.removalState(s),
	}, nil
}

func (u *securityKeyUseCase) Create(
	ctx context.Context,
	s sessionDomain.Session,
	input *securityKeyDomain.CreateInput,
) (*View, error) {
	if !Allowed(s) {
		n := securityKeyDomain.NoticeAccessDenied
		return Restricted(&n), nil
	}

	if strings.TrimSpace(input.DeviceName) == "" {
		return nil, securityKeyDomain.ErrInvalidDeviceName
	}

	keyID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	key := &securityKeyDomain.SecurityKey{
		ID:         keyID,
		DeviceName: securityKeyDomain.Label(input.DeviceName, input.Purpose),
		Purpose:    input.Purpose,
		Role:       input.Role,
		OwnerID:    s.UserID(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := u.registry.Register(ctx, key); err != nil {
		u.logger.Warn("security key registration failed", slog.Any("error", err))
		n := securityKeyDomain.RegisterFailed(securityKeyDomain.RegistryMessage(err))
		return &View{
			Removal: u.removalState(s),
			Dialog:  Dialog{Open: true, DeviceName: input.DeviceName},
			Notice:  &n,
		}, nil
	}

	n := securityKeyDomain.NoticeRegistered
	view := &View{Removal: u.removalState(s), Notice: &n}
	u.refresh(ctx, view)
	return view, nil
}

func (u *securityKeyUseCase) SelectForRemoval(
	ctx context.Context,
	s sessionDomain.Session,
	keyID uuid.UUID,
) (*View, error) {
	if !Allowed(s) {
		return Restricted(nil), nil
	}

	u.removalMu.Lock()
	if _, ok := u.removals.Get(removalKey(s)); !ok {
		// Clears any expired entry so the gauge stays balanced.
		u.removals.Delete(removalKey(s))
		u.metrics.AdjustInFlight(ctx, "securitykey", "pending_removal", 1)
	}
	u.removals.Set(removalKey(s), keyID, u.removalTTL)
	u.removalMu.Unlock()

	return &View{Removal: u.removalState(s)}, nil
}

func (u *securityKeyUseCase) CancelRemoval(ctx context.Context, s sessionDomain.Session) (*View, error) {
	if !Allowed(s) {
		return Restricted(nil), nil
	}

	u.removalMu.Lock()
	u.removals.Delete(removalKey(s))
	u.removalMu.Unlock()

	return &View{Removal: securityKeyDomain.Idle()}, nil
}

func (u *securityKeyUseCase) ConfirmRemoval(
	ctx context.Context,
	s sessionDomain.Session,
	keyID uuid.UUID,
) (*View, error) {
	if !Allowed(s) {
		return Restricted(nil), nil
	}

	pending := u.removalState(s)
	if !pending.Matches(keyID) {
		return nil, securityKeyDomain.ErrRemovalNotPending
	}

	if err := u.registry.Remove(ctx, keyID); err != nil {
		u.logger.Warn("security key removal failed",
			slog.String("key_id", keyID.String()),
			slog.Any("error", err),
		)
		n := securityKeyDomain.RemoveFailed(securityKeyDomain.RegistryMessage(err))
		return &View{Removal: pending, Notice: &n}, nil
	}

	u.removalMu.Lock()
	if current := u.removalState(s); current.Matches(keyID) {
		u.removals.Delete(removalKey(s))
	}
	u.removalMu.Unlock()

	n := securityKeyDomain.NoticeRemoved
	view := &View{Removal: u.removalState(s), Notice: &n}
	u.refresh(ctx, view)
	return view, nil
}

// evictExpired drops pending removals whose confirmation window has passed.
func (u *securityKeyUseCase) evictExpired() {
	u.removals.DeleteExpired()
}

func (u *securityKeyUseCase) evictLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.evictExpired()
		}
	}
}

// NewSecurityKeyUseCase creates the security key panel use case. Pending removals
// expire after removalTTL and are evicted every cleanupInterval until ctx is
// cancelled. A zero cleanupInterval disables eviction.
func NewSecurityKeyUseCase(
	ctx context.Context,
	registry Registry,
	removalTTL time.Duration,
	cleanupInterval time.Duration,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) SecurityKeyUseCase {
	u := &securityKeyUseCase{
		registry:   registry,
		removals:   gocache.New(removalTTL, 0),
		removalTTL: removalTTL,
		metrics:    businessMetrics,
		logger:     logger,
	}
	u.removals.OnEvicted(func(string, interface{}) {
		u.metrics.AdjustInFlight(context.Background(), "securitykey", "pending_removal", -1)
	})
	if cleanupInterval > 0 {
		go u.evictLoop(ctx, cleanupInterval)
	}
	return u
}
