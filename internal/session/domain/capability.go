package domain

// RouteContext carries deployment-level flags that gate capabilities.
type RouteContext struct {
	VotingOpen bool
}

// CapabilitySet is the set of console areas a session may reach. It is derived
// per request and never cached.
type CapabilitySet struct {
	checkin    bool
	vote       bool
	admin      bool
	superAdmin bool
}

// Capabilities derives the capability set for s under rc. Sets are monotonic in
// role rank: a higher role never loses a capability a lower role has.
func Capabilities(s Session, rc RouteContext) CapabilitySet {
	role := s.EffectiveRole()
	return CapabilitySet{
		checkin:    role.AtLeast(RoleUser),
		vote:       role.AtLeast(RoleUser) && rc.VotingOpen,
		admin:      role.AtLeast(RoleAdmin),
		superAdmin: role == RoleSuperAdmin,
	}
}

// CanAccessCheckin reports access to the check-in desk.
func (c CapabilitySet) CanAccessCheckin() bool { return c.checkin }

// CanAccessVote reports access to the poll station.
func (c CapabilitySet) CanAccessVote() bool { return c.vote }

// IsAdmin reports access to the admin dashboard.
func (c CapabilitySet) IsAdmin() bool { return c.admin }

// IsSuperAdmin reports access to superadmin-only panels such as security keys.
func (c CapabilitySet) IsSuperAdmin() bool { return c.superAdmin }
