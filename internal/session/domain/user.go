package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a persisted console account.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	AvatarURL    string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// SessionToken is a persisted opaque bearer token. Only the SHA-256 hash of the
// plain token is stored.
type SessionToken struct {
	ID        uuid.UUID
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Usable reports whether the token is unrevoked and unexpired at now.
func (t *SessionToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// LoginInput carries credentials submitted to the login endpoint.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is returned once per successful login. PlainToken is never stored.
type LoginOutput struct {
	PlainToken string
	ExpiresAt  time.Time
	Session    Session
}

// CreateUserInput carries the fields needed to seed a user.
type CreateUserInput struct {
	Email       string
	DisplayName string
	AvatarURL   string
	Password    string
	Role        Role
}
