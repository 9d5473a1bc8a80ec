package jobs

import (
	"context"
	"time"

	"orghub-backend/internal/logger"
)

const jobTimeout = 5 * time.Minute

// ExpireOverdueInvitations marks pending invitations past their expiry as
// EXPIRED in bulk. Lazy expiry on the read path stays authoritative; this
// sweep only settles rows nobody has read since they lapsed.
func (jr *JobRunner) ExpireOverdueInvitations() {
	jr.runWithRecovery("expire-overdue-invitations", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := jr.store.InvitationRepository.ExpireOverdue(ctx)
		if err != nil {
			logger.Error("Failed to expire overdue invitations", "error", err)
			return
		}
		logger.Info("Expired overdue invitations", "count", n)
	})
}

// PurgeResolvedInvitations deletes invitations that reached a terminal state
// long enough ago that nobody needs the row anymore.
func (jr *JobRunner) PurgeResolvedInvitations() {
	jr.runWithRecovery("purge-resolved-invitations", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		cutoffDays := jr.config.Scheduler.PurgeAfterDays
		n, err := jr.store.InvitationRepository.PurgeResolvedBefore(ctx, cutoffDays)
		if err != nil {
			logger.Error("Failed to purge resolved invitations", "error", err)
			return
		}
		logger.Info("Purged resolved invitations", "count", n, "cutoff_days", cutoffDays)
	})
}
