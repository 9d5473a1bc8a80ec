package domain

import "time"

type Organization struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Domain      string    `json:"domain,omitempty"` // optional email domain claimed by the org
	Description string    `json:"description,omitempty"`
	CreatedBy   int32     `json:"created_by"`
	CreatedOn   time.Time `json:"created_on"`
	MemberCount int32     `json:"member_count,omitempty"`
}
