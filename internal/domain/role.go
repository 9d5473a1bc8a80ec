package domain

import "time"

// Default role names seeded for every organization.
const (
	RoleNameAdmin  = "ADMIN"
	RoleNameMember = "MEMBER"
)

type Role struct {
	ID          int32     `json:"id"`
	OrgID       int32     `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}
