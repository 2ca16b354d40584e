// Package usecase implements the superadmin security key panel.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/notice"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// Registry stores security key records.
type Registry interface {
	List(ctx context.Context) ([]*securityKeyDomain.SecurityKey, error)
	Register(ctx context.Context, key *securityKeyDomain.SecurityKey) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// Dialog is the registration dialog state.
type Dialog struct {
	Open       bool
	DeviceName string
}

// View is the panel state after an action. Keys is only meaningful when
// Refreshed is set; otherwise the client keeps the list it already shows.
type View struct {
	Restricted bool
	Keys       []*securityKeyDomain.SecurityKey
	Refreshed  bool
	Removal    securityKeyDomain.RemovalState
	Dialog     Dialog
	Notice     *notice.Notice
}

// SecurityKeyUseCase is the security key panel. Every operation first checks that
// the session is superadmin; otherwise it returns the restricted view and never
// touches the registry.
type SecurityKeyUseCase interface {
	View(ctx context.Context, s sessionDomain.Session) (*View, error)
	Create(ctx context.Context, s sessionDomain.Session, input *securityKeyDomain.CreateInput) (*View, error)
	SelectForRemoval(ctx context.Context, s sessionDomain.Session, keyID uuid.UUID) (*View, error)
	CancelRemoval(ctx context.Context, s sessionDomain.Session) (*View, error)
	ConfirmRemoval(ctx context.Context, s sessionDomain.Session, keyID uuid.UUID) (*View, error)
}
