package service

import (
	"context"
	"fmt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type organizationService struct {
	orgRepo        repository.OrganizationRepository
	roleRepo       repository.RoleRepository
	membershipRepo repository.MembershipRepository
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	roleRepo repository.RoleRepository,
	membershipRepo repository.MembershipRepository,
) OrganizationService {
	return &organizationService{
		orgRepo:        orgRepo,
		roleRepo:       roleRepo,
		membershipRepo: membershipRepo,
	}
}

// CreateOrganization creates the org row, seeds the default Admin and Member
// roles, and attaches the creator as Admin.
func (s *organizationService) CreateOrganization(ctx context.Context, userID int32, org *domain.Organization) error {
	existing, err := s.orgRepo.GetBySlug(ctx, org.Slug)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if existing != nil {
		return domain.ConflictError("an organization with this slug already exists")
	}

	org.CreatedBy = userID
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return err
	}

	adminRole, err := s.getOrCreateRole(ctx, org.ID, domain.RoleNameAdmin, "Full control over the organization")
	if err != nil {
		return err
	}
	if _, err := s.getOrCreateRole(ctx, org.ID, domain.RoleNameMember, "Regular organization member"); err != nil {
		return err
	}

	return s.membershipRepo.Add(ctx, &domain.Membership{
		UserID: userID,
		OrgID:  org.ID,
		RoleID: adminRole.ID,
	})
}

func (s *organizationService) GetOrganization(ctx context.Context, slug string) (*domain.Organization, error) {
	return s.orgRepo.GetBySlug(ctx, slug)
}

func (s *organizationService) ListMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	return s.membershipRepo.ListByOrg(ctx, orgID)
}

func (s *organizationService) GetMembership(ctx context.Context, userID, orgID int32) (*domain.Membership, error) {
	return s.membershipRepo.Get(ctx, userID, orgID)
}

// getOrCreateRole is idempotent: a concurrent create losing the race on the
// (org_id, name) unique constraint falls back to the winner's row.
func (s *organizationService) getOrCreateRole(ctx context.Context, orgID int32, name, description string) (*domain.Role, error) {
	role, err := s.roleRepo.GetByName(ctx, orgID, name)
	if err == nil {
		return role, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	role = &domain.Role{OrgID: orgID, Name: name, Description: description}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		if domain.IsKind(err, domain.KindConflict) {
			return s.roleRepo.GetByName(ctx, orgID, name)
		}
		return nil, err
	}
	return role, nil
}
