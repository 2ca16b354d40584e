// Package domain models security key registry records and the panel copy shown
// to super administrators.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// Purpose is what a security key grants access to.
type Purpose string

const (
	PurposeGeneral  Purpose = "general"
	PurposeElection Purpose = "election"
)

// Label is the access description shown next to a key.
func (p Purpose) Label() string {
	if p == PurposeElection {
		return "Election Access"
	}
	return "General Access"
}

// ParsePurpose parses a key purpose. An empty value defaults to general.
func ParsePurpose(s string) (Purpose, error) {
	switch Purpose(strings.ToLower(strings.TrimSpace(s))) {
	case "", PurposeGeneral:
		return PurposeGeneral, nil
	case PurposeElection:
		return PurposeElection, nil
	default:
		return "", ErrInvalidPurpose
	}
}

// ParseKeyRole parses the authorization level of a key. Only admin and
// superadmin are valid; an empty value defaults to admin.
func ParseKeyRole(s string) (sessionDomain.Role, error) {
	switch sessionDomain.Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", sessionDomain.RoleAdmin:
		return sessionDomain.RoleAdmin, nil
	case sessionDomain.RoleSuperAdmin:
		return sessionDomain.RoleSuperAdmin, nil
	default:
		return "", ErrInvalidKeyRole
	}
}

// RoleLabel is the authorization level shown next to a key.
func RoleLabel(role sessionDomain.Role) string {
	if role == sessionDomain.RoleSuperAdmin {
		return "Superadmin"
	}
	return "Admin"
}

// SecurityKey is the registry record of one hardware security key.
type SecurityKey struct {
	ID         uuid.UUID
	DeviceName string
	Purpose    Purpose
	Role       sessionDomain.Role
	OwnerID    uuid.UUID
	CreatedAt  time.Time
}

// DisplayName returns the device name or the unnamed fallback.
func (k *SecurityKey) DisplayName() string {
	if strings.TrimSpace(k.DeviceName) == "" {
		return "Unnamed Device"
	}
	return k.DeviceName
}

// Label builds the stored device name: the trimmed name followed by the purpose.
func Label(deviceName string, purpose Purpose) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(deviceName), purpose)
}

// CreateInput is a registration request from the panel dialog.
type CreateInput struct {
	DeviceName string
	Purpose    Purpose
	Role       sessionDomain.Role
}

// RemovalState is Idle when Pending is false, otherwise PendingConfirmation(KeyID)
// until ExpiresAt.
type RemovalState struct {
	Pending   bool
	KeyID     uuid.UUID
	ExpiresAt time.Time
}

// Idle is the removal state with nothing selected.
func Idle() RemovalState {
	return RemovalState{}
}

// PendingConfirmation is the removal state awaiting confirmation for keyID.
func PendingConfirmation(keyID uuid.UUID, expiresAt time.Time) RemovalState {
	return RemovalState{Pending: true, KeyID: keyID, ExpiresAt: expiresAt}
}

// Matches reports whether a confirmation for keyID may proceed.
func (r RemovalState) Matches(keyID uuid.UUID) bool {
	return r.Pending && r.KeyID == keyID
}
