package service

import (
	"context"
	"fmt"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/logger"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/security"
)

type invitationService struct {
	inviteRepo     repository.InvitationRepository
	membershipRepo repository.MembershipRepository
	roleRepo       repository.RoleRepository
	orgRepo        repository.OrganizationRepository
	userRepo       repository.UserRepository
	noteRepo       repository.NotificationRepository
	emailSvc       EmailService
	now            func() time.Time
}

func NewInvitationService(
	inviteRepo repository.InvitationRepository,
	membershipRepo repository.MembershipRepository,
	roleRepo repository.RoleRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) InvitationService {
	return NewInvitationServiceWithClock(inviteRepo, membershipRepo, roleRepo, orgRepo, userRepo, noteRepo, emailSvc, time.Now)
}

// NewInvitationServiceWithClock allows tests to control the wall clock used
// for expiry decisions.
func NewInvitationServiceWithClock(
	inviteRepo repository.InvitationRepository,
	membershipRepo repository.MembershipRepository,
	roleRepo repository.RoleRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	now func() time.Time,
) InvitationService {
	return &invitationService{
		inviteRepo:     inviteRepo,
		membershipRepo: membershipRepo,
		roleRepo:       roleRepo,
		orgRepo:        orgRepo,
		userRepo:       userRepo,
		noteRepo:       noteRepo,
		emailSvc:       emailSvc,
		now:            now,
	}
}

func (s *invitationService) Create(ctx context.Context, orgID, roleID int32, email string, invitedBy int32) (*domain.Invitation, error) {
	member, err := s.membershipRepo.GetByEmail(ctx, email, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if member != nil {
		return nil, domain.ConflictError("user is already a member of this organization")
	}

	pending, err := s.inviteRepo.FindPending(ctx, email, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil {
		return nil, domain.ConflictError("email already has a pending invitation to this organization")
	}

	if _, err := s.roleRepo.GetByID(ctx, roleID); err != nil {
		return nil, err
	}

	token, err := security.GenerateInviteToken()
	if err != nil {
		return nil, err
	}

	inv := &domain.Invitation{
		OrgID:     orgID,
		RoleID:    roleID,
		Email:     email,
		InvitedBy: &invitedBy,
		Token:     token,
		Type:      domain.InvitationTypeInvite,
		Status:    domain.InvitationStatusPending,
		ExpiresOn: security.InviteExpiry(s.now()),
	}
	// The pre-checks above are racy under concurrent creates; the partial
	// unique index on (org_id, email) WHERE status = 'PENDING' is the real
	// guard, surfacing here as a Conflict.
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.sendInvitationEmail(ctx, inv)
	return inv, nil
}

func (s *invitationService) Validate(ctx context.Context, token string) (*domain.Invitation, error) {
	inv, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	res := domain.Transition(inv, domain.EventValidate, s.now())
	if res.Changed {
		// Lazy expiry: persist the terminal status discovered on read. The
		// invitation is invalid either way, so a failed write only delays the
		// bookkeeping until the next read or the nightly sweep.
		if _, err := s.inviteRepo.UpdateStatus(ctx, inv.ID, res.Status); err != nil {
			logger.Error("Failed to persist lazy expiry", "invitation_id", inv.ID, "error", err)
		}
		inv.Status = res.Status
	}
	if !res.Valid {
		return nil, domain.InvalidError(res.Reason)
	}
	return inv, nil
}

func (s *invitationService) Accept(ctx context.Context, token string, actingUserID int32, actingUserEmail string) (*domain.Organization, error) {
	inv, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	if !inv.EmailMatches(actingUserEmail) {
		return nil, domain.ForbiddenError("invitation is for a different email address")
	}

	accepted, err := s.inviteRepo.Accept(ctx, inv.ID, &domain.Membership{
		UserID: actingUserID,
		OrgID:  inv.OrgID,
		RoleID: inv.RoleID,
	})
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, accepted.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization after accept: %w", err)
	}

	s.notifyInviter(ctx, accepted, org, "accepted")
	return org, nil
}

func (s *invitationService) Decline(ctx context.Context, token string, actingUserEmail string) error {
	inv, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}

	if !inv.EmailMatches(actingUserEmail) {
		return domain.ForbiddenError("invitation is for a different email address")
	}

	declined, err := s.inviteRepo.UpdateStatus(ctx, inv.ID, domain.InvitationStatusDeclined)
	if err != nil {
		return err
	}

	if org, err := s.orgRepo.GetByID(ctx, declined.OrgID); err == nil {
		s.notifyInviter(ctx, declined, org, "declined")
	}
	return nil
}

func (s *invitationService) Resend(ctx context.Context, id, orgID int32) (*domain.Invitation, error) {
	inv, err := s.inviteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.OrgID != orgID {
		return nil, domain.NotFoundError("invitation not found")
	}
	if inv.Status == domain.InvitationStatusAccepted {
		return nil, domain.ConflictError("invitation already accepted")
	}

	token, err := security.GenerateInviteToken()
	if err != nil {
		return nil, err
	}

	renewed, err := s.inviteRepo.RegenerateToken(ctx, id, token, security.InviteExpiry(s.now()))
	if err != nil {
		return nil, err
	}

	s.sendInvitationEmail(ctx, renewed)
	return renewed, nil
}

func (s *invitationService) Cancel(ctx context.Context, id, orgID int32) error {
	inv, err := s.inviteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.OrgID != orgID {
		return domain.NotFoundError("invitation not found")
	}
	return s.inviteRepo.Delete(ctx, id)
}

func (s *invitationService) ListByOrg(ctx context.Context, orgID int32) ([]domain.Invitation, error) {
	return s.inviteRepo.ListByOrg(ctx, orgID)
}

func (s *invitationService) RequestAccess(ctx context.Context, orgID int32, email string) (*domain.Invitation, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	member, err := s.membershipRepo.GetByEmail(ctx, email, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if member != nil {
		return nil, domain.ConflictError("user is already a member of this organization")
	}

	pending, err := s.inviteRepo.FindPending(ctx, email, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil {
		return nil, domain.ConflictError("email already has a pending invitation or request for this organization")
	}

	role, err := s.roleRepo.GetByName(ctx, orgID, domain.RoleNameMember)
	if err != nil {
		return nil, err
	}

	token, err := security.GenerateInviteToken()
	if err != nil {
		return nil, err
	}

	inv := &domain.Invitation{
		OrgID:     orgID,
		RoleID:    role.ID,
		Email:     email,
		Token:     token,
		Type:      domain.InvitationTypeRequest,
		Status:    domain.InvitationStatusPending,
		ExpiresOn: security.InviteExpiry(s.now()),
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.notifyAdmins(ctx, org, inv)
	return inv, nil
}

// sendInvitationEmail is best-effort: a mail failure never fails the
// operation, it is logged and the invitation stays valid.
func (s *invitationService) sendInvitationEmail(ctx context.Context, inv *domain.Invitation) {
	org, err := s.orgRepo.GetByID(ctx, inv.OrgID)
	if err != nil {
		logger.Error("Failed to load organization for invitation email", "org_id", inv.OrgID, "error", err)
		return
	}
	if err := s.emailSvc.SendInvitation(ctx, inv.Email, org.Name, inv.Token); err != nil {
		logger.Error("Failed to send invitation email", "invitation_id", inv.ID, "error", err)
	}
}

func (s *invitationService) notifyInviter(ctx context.Context, inv *domain.Invitation, org *domain.Organization, result string) {
	if inv.InvitedBy == nil {
		return
	}

	note := &domain.Notification{
		UserID:  *inv.InvitedBy,
		OrgID:   inv.OrgID,
		Title:   fmt.Sprintf("Invitation %s", result),
		Message: fmt.Sprintf("%s has %s your invitation to join %s", inv.Email, result, org.Name),
		Attributes: map[string]string{
			"invitation_id": fmt.Sprintf("%d", inv.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to create inviter notification", "invitation_id", inv.ID, "error", err)
	}

	if inviter, err := s.userRepo.GetByID(ctx, *inv.InvitedBy); err == nil {
		if err := s.emailSvc.SendInvitationResult(ctx, inviter.Email, inv.Email, org.Name, result); err != nil {
			logger.Error("Failed to send invitation result email", "invitation_id", inv.ID, "error", err)
		}
	}
}

func (s *invitationService) notifyAdmins(ctx context.Context, org *domain.Organization, inv *domain.Invitation) {
	_, memberships, err := s.membershipRepo.ListByOrg(ctx, org.ID)
	if err != nil {
		logger.Error("Failed to list members for access request notification", "org_id", org.ID, "error", err)
		return
	}
	for _, m := range memberships {
		if !m.IsAdmin() {
			continue
		}
		note := &domain.Notification{
			UserID:  m.UserID,
			OrgID:   org.ID,
			Title:   "Access request",
			Message: fmt.Sprintf("%s has requested access to %s", inv.Email, org.Name),
			Attributes: map[string]string{
				"invitation_id": fmt.Sprintf("%d", inv.ID),
			},
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.Error("Failed to create access request notification", "org_id", org.ID, "user_id", m.UserID, "error", err)
		}
	}
}
