package domain_test

import (
	"testing"
	"time"

	"orghub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func pendingInvitation(expiresOn time.Time) *domain.Invitation {
	return &domain.Invitation{
		ID:        1,
		OrgID:     10,
		RoleID:    2,
		Email:     "invitee@example.com",
		Token:     "tok",
		Type:      domain.InvitationTypeInvite,
		Status:    domain.InvitationStatusPending,
		ExpiresOn: expiresOn,
	}
}

func TestTransition_PendingValidate(t *testing.T) {
	now := time.Now()
	inv := pendingInvitation(now.Add(time.Hour))

	res := domain.Transition(inv, domain.EventValidate, now)

	assert.True(t, res.Valid)
	assert.False(t, res.Changed)
	assert.Equal(t, domain.InvitationStatusPending, res.Status)
}

func TestTransition_PendingAccept(t *testing.T) {
	now := time.Now()
	inv := pendingInvitation(now.Add(time.Hour))

	res := domain.Transition(inv, domain.EventAccept, now)

	assert.True(t, res.Valid)
	assert.True(t, res.Changed)
	assert.Equal(t, domain.InvitationStatusAccepted, res.Status)
	// The input is never mutated.
	assert.Equal(t, domain.InvitationStatusPending, inv.Status)
}

func TestTransition_PendingDecline(t *testing.T) {
	now := time.Now()
	inv := pendingInvitation(now.Add(time.Hour))

	res := domain.Transition(inv, domain.EventDecline, now)

	assert.True(t, res.Valid)
	assert.True(t, res.Changed)
	assert.Equal(t, domain.InvitationStatusDeclined, res.Status)
}

func TestTransition_ExpiryBeatsEveryEvent(t *testing.T) {
	now := time.Now()
	inv := pendingInvitation(now.Add(-time.Second))

	for _, event := range []domain.InvitationEvent{domain.EventValidate, domain.EventAccept, domain.EventDecline} {
		res := domain.Transition(inv, event, now)

		assert.False(t, res.Valid, "event %s", event)
		assert.True(t, res.Changed, "event %s", event)
		assert.Equal(t, domain.InvitationStatusExpired, res.Status, "event %s", event)
		assert.Equal(t, "invitation has expired", res.Reason)
	}
}

func TestTransition_ExactExpiryInstantStillValid(t *testing.T) {
	now := time.Now()
	inv := pendingInvitation(now)

	res := domain.Transition(inv, domain.EventAccept, now)

	assert.True(t, res.Valid)
	assert.Equal(t, domain.InvitationStatusAccepted, res.Status)
}

func TestTransition_TerminalStatesAbsorb(t *testing.T) {
	now := time.Now()
	cases := []struct {
		status domain.InvitationStatus
		reason string
	}{
		{domain.InvitationStatusAccepted, "invitation already accepted"},
		{domain.InvitationStatusDeclined, "invitation already declined"},
		{domain.InvitationStatusExpired, "invitation already expired"},
	}

	for _, tc := range cases {
		inv := pendingInvitation(now.Add(time.Hour))
		inv.Status = tc.status

		for _, event := range []domain.InvitationEvent{domain.EventValidate, domain.EventAccept, domain.EventDecline} {
			res := domain.Transition(inv, event, now)

			assert.False(t, res.Valid, "status %s event %s", tc.status, event)
			assert.False(t, res.Changed, "status %s event %s", tc.status, event)
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, tc.reason, res.Reason)
		}
	}
}

func TestInvitationStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.InvitationStatusPending.IsTerminal())
	assert.True(t, domain.InvitationStatusAccepted.IsTerminal())
	assert.True(t, domain.InvitationStatusDeclined.IsTerminal())
	assert.True(t, domain.InvitationStatusExpired.IsTerminal())
}

func TestInvitation_EmailMatches(t *testing.T) {
	inv := pendingInvitation(time.Now().Add(time.Hour))

	assert.True(t, inv.EmailMatches("invitee@example.com"))
	assert.True(t, inv.EmailMatches("Invitee@Example.COM"))
	assert.False(t, inv.EmailMatches("other@example.com"))
}
