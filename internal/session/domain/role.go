// Package domain defines the session and identity model: users, roles, session
// tokens and the capability set derived from a session.
package domain

import "strings"

// Role is the coarse permission level attached to a user.
type Role string

const (
	RoleNone       Role = "none"
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Rank orders roles: none < user < admin < superadmin. Unknown roles rank as none.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r ranks at or above other.
func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

// Label is the human-readable role name shown in the user badge.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	case RoleSuperAdmin:
		return "Superadmin"
	default:
		return "Guest"
	}
}

// ParseRole parses an assignable role. "none" is not assignable to a user.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	default:
		return RoleNone, ErrInvalidRole
	}
}
