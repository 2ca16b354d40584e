package dto

import (
	"time"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// UserResponse is the public identity of the signed-in user.
type UserResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// CapabilitiesResponse mirrors CapabilitySet.
type CapabilitiesResponse struct {
	CanAccessCheckin bool `json:"can_access_checkin"`
	CanAccessVote    bool `json:"can_access_vote"`
	IsAdmin          bool `json:"is_admin"`
	IsSuperAdmin     bool `json:"is_superadmin"`
}

// SessionResponse describes the current session and what it can reach.
type SessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *UserResponse        `json:"user"`
	Role          string               `json:"role"`
	Capabilities  CapabilitiesResponse `json:"capabilities"`
}

// LoginResponse is returned once per successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   SessionResponse `json:"session"`
}

// MapCapabilities converts a capability set into its response form.
func MapCapabilities(caps sessionDomain.CapabilitySet) CapabilitiesResponse {
	return CapabilitiesResponse{
		CanAccessCheckin: caps.CanAccessCheckin(),
		CanAccessVote:    caps.CanAccessVote(),
		IsAdmin:          caps.IsAdmin(),
		IsSuperAdmin:     caps.IsSuperAdmin(),
	}
}

// MapSessionToResponse converts a session, evaluated under rc, into its response form.
func MapSessionToResponse(s sessionDomain.Session, rc sessionDomain.RouteContext) SessionResponse {
	response := SessionResponse{
		Authenticated: s.Authenticated(),
		Role:          string(s.EffectiveRole()),
		Capabilities:  MapCapabilities(sessionDomain.Capabilities(s, rc)),
	}
	if s.User != nil {
		response.User = &UserResponse{
			ID:          s.User.ID.String(),
			DisplayName: s.User.DisplayName,
			AvatarURL:   s.User.AvatarURL,
		}
	}
	return response
}
