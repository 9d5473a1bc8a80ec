package service

import (
	"context"

	"orghub-backend/internal/domain"
)

type AuthService interface {
	// ExchangeSession verifies an identity-provider ID token, provisions the
	// user on first sight, and returns API access/refresh tokens.
	ExchangeSession(ctx context.Context, idToken string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, []domain.Organization, []domain.Membership, error)
	UpdateProfile(ctx context.Context, userID int32, name, avatarURL string) error
}

type OrganizationService interface {
	CreateOrganization(ctx context.Context, userID int32, org *domain.Organization) error
	GetOrganization(ctx context.Context, slug string) (*domain.Organization, error)
	ListMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error)
	GetMembership(ctx context.Context, userID, orgID int32) (*domain.Membership, error)
}

type InvitationService interface {
	Create(ctx context.Context, orgID, roleID int32, email string, invitedBy int32) (*domain.Invitation, error)
	Validate(ctx context.Context, token string) (*domain.Invitation, error)
	Accept(ctx context.Context, token string, actingUserID int32, actingUserEmail string) (*domain.Organization, error)
	Decline(ctx context.Context, token string, actingUserEmail string) error
	Resend(ctx context.Context, id, orgID int32) (*domain.Invitation, error)
	Cancel(ctx context.Context, id, orgID int32) error
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Invitation, error)
	RequestAccess(ctx context.Context, orgID int32, email string) (*domain.Invitation, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, orgName, token string) error
	SendInvitationResult(ctx context.Context, inviterEmail, inviteeEmail, orgName, result string) error
}
