package service

import (
	"context"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type userService struct {
	userRepo       repository.UserRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
) UserService {
	return &userService{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, []domain.Organization, []domain.Membership, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	memberships, err := s.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	var orgs []domain.Organization
	for _, m := range memberships {
		org, err := s.orgRepo.GetByID(ctx, m.OrgID)
		if err != nil {
			continue
		}
		orgs = append(orgs, *org)
	}
	return user, orgs, memberships, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, avatarURL string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if name != "" {
		user.Name = name
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	return s.userRepo.Update(ctx, user)
}
