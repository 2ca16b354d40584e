package domain

import (
	"github.com/google/uuid"
)

// Identity is the public part of a user carried by a session.
type Identity struct {
	ID          uuid.UUID
	DisplayName string
	AvatarURL   string
}

// Session is the resolved view of "who is making this request". The zero value
// is the anonymous session. Sessions are values; holders never share mutable state.
type Session struct {
	User    *Identity
	Role    Role
	TokenID uuid.UUID
}

// Anonymous returns the session used when no valid token is presented.
func Anonymous() Session {
	return Session{Role: RoleNone}
}

// NewSession builds an authenticated session for user bound to token.
func NewSession(user *User, tokenID uuid.UUID) Session {
	return Session{
		User: &Identity{
			ID:          user.ID,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		},
		Role:    user.Role,
		TokenID: tokenID,
	}
}

// Authenticated reports whether the session belongs to a user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// EffectiveRole is the role used for capability checks. Anonymous sessions are
// always RoleNone regardless of the Role field.
func (s Session) EffectiveRole() Role {
	if !s.Authenticated() {
		return RoleNone
	}
	return s.Role
}

// UserID returns the authenticated user's id, or uuid.Nil.
func (s Session) UserID() uuid.UUID {
	if s.User == nil {
		return uuid.Nil
	}
	return s.User.ID
}
