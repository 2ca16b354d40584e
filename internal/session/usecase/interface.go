// Package usecase implements the session and identity provider: login, token
// authentication, logout and user seeding.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// UserRepository persists console users.
type UserRepository interface {
	Create(ctx context.Context, user *sessionDomain.User) error

	// Get returns ErrUserNotFound when the id is unknown.
	Get(ctx context.Context, userID uuid.UUID) (*sessionDomain.User, error)

	// GetByEmail returns ErrUserNotFound when the email is unknown.
	GetByEmail(ctx context.Context, email string) (*sessionDomain.User, error)

	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// TokenRepository persists session tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *sessionDomain.SessionToken) error

	// GetByTokenHash returns ErrTokenNotFound when no token matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*sessionDomain.SessionToken, error)

	// Revoke sets revoked_at when it is still null. Revoking twice is a no-op.
	Revoke(ctx context.Context, tokenID uuid.UUID, at time.Time) error
}

// SessionUseCase is the identity provider consumed by the HTTP layer and the CLI.
type SessionUseCase interface {
	// Login verifies credentials and issues a new token. Unknown emails and wrong
	// passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, input *sessionDomain.LoginInput) (*sessionDomain.LoginOutput, error)

	// Authenticate resolves a token hash into a session. Missing, revoked and
	// expired tokens yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, tokenHash string) (sessionDomain.Session, error)

	// Logout revokes the token. Unknown or already revoked tokens are not an error.
	Logout(ctx context.Context, tokenHash string) error

	// CreateUser seeds a new active user.
	CreateUser(ctx context.Context, input *sessionDomain.CreateUserInput) (*sessionDomain.User, error)
}
