package domain

import (
	"fmt"
	"strings"
	"time"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusDeclined InvitationStatus = "DECLINED"
	InvitationStatusExpired  InvitationStatus = "EXPIRED"
)

// IsTerminal reports whether no further transition may leave the status.
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationStatusAccepted || s == InvitationStatusDeclined || s == InvitationStatusExpired
}

type InvitationType string

const (
	InvitationTypeInvite  InvitationType = "INVITE"  // created by an org admin
	InvitationTypeRequest InvitationType = "REQUEST" // self-service access request
)

type Invitation struct {
	ID        int32            `json:"id"`
	OrgID     int32            `json:"org_id"`
	RoleID    int32            `json:"role_id"`
	Email     string           `json:"email"`
	InvitedBy *int32           `json:"invited_by,omitempty"` // nil for REQUEST-type invitations
	Token     string           `json:"token"`
	Type      InvitationType   `json:"type"`
	Status    InvitationStatus `json:"status"`
	CreatedOn time.Time        `json:"created_on"`
	ExpiresOn time.Time        `json:"expires_on"`
	UpdatedOn time.Time        `json:"updated_on"`
}

// EmailMatches compares the invitee email case-insensitively.
func (inv *Invitation) EmailMatches(email string) bool {
	return strings.EqualFold(inv.Email, email)
}

type InvitationEvent string

const (
	EventValidate InvitationEvent = "VALIDATE"
	EventAccept   InvitationEvent = "ACCEPT"
	EventDecline  InvitationEvent = "DECLINE"
)

// TransitionResult is the outcome of applying an event to an invitation at a
// given instant. Writing the new status back is the caller's responsibility;
// Changed marks results that require persistence.
type TransitionResult struct {
	Status  InvitationStatus
	Changed bool
	Valid   bool
	Reason  string
}

// Transition applies event to inv at time now. It is pure: the invitation is
// never mutated. Terminal states absorb every event, and a pending invitation
// whose expiry has passed moves to EXPIRED regardless of the event.
func Transition(inv *Invitation, event InvitationEvent, now time.Time) TransitionResult {
	if inv.Status.IsTerminal() {
		return TransitionResult{
			Status: inv.Status,
			Reason: fmt.Sprintf("invitation already %s", strings.ToLower(string(inv.Status))),
		}
	}

	if now.After(inv.ExpiresOn) {
		return TransitionResult{
			Status:  InvitationStatusExpired,
			Changed: true,
			Reason:  "invitation has expired",
		}
	}

	switch event {
	case EventAccept:
		return TransitionResult{Status: InvitationStatusAccepted, Changed: true, Valid: true}
	case EventDecline:
		return TransitionResult{Status: InvitationStatusDeclined, Changed: true, Valid: true}
	default:
		return TransitionResult{Status: InvitationStatusPending, Valid: true}
	}
}
