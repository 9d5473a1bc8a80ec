package domain

import "time"

// Membership links a user to an organization with a role.
type Membership struct {
	UserID   int32     `json:"user_id"`
	OrgID    int32     `json:"org_id"`
	RoleID   int32     `json:"role_id"`
	RoleName string    `json:"role_name,omitempty"` // populated on reads that join roles
	JoinedOn time.Time `json:"joined_on"`
}

// IsAdmin reports whether the membership carries the default admin role.
func (m *Membership) IsAdmin() bool {
	return m.RoleName == RoleNameAdmin
}
