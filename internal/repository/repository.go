package repository

import (
	"context"
	"time"

	"orghub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
}

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id int32) (*domain.Role, error)
	GetByName(ctx context.Context, orgID int32, name string) (*domain.Role, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Role, error)
}

type MembershipRepository interface {
	Add(ctx context.Context, m *domain.Membership) error
	Get(ctx context.Context, userID, orgID int32) (*domain.Membership, error)
	GetByEmail(ctx context.Context, email string, orgID int32) (*domain.Membership, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error)
	Remove(ctx context.Context, userID, orgID int32) error
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	GetByID(ctx context.Context, id int32) (*domain.Invitation, error)
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Invitation, error)
	FindPending(ctx context.Context, email string, orgID int32) (*domain.Invitation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.InvitationStatus) (*domain.Invitation, error)
	// Accept records the membership and marks the invitation accepted in a
	// single transaction, so a failure of either step leaves no partial state.
	Accept(ctx context.Context, id int32, m *domain.Membership) (*domain.Invitation, error)
	RegenerateToken(ctx context.Context, id int32, token string, expiresOn time.Time) (*domain.Invitation, error)
	Delete(ctx context.Context, id int32) error
	ExpireOverdue(ctx context.Context) (int64, error)
	PurgeResolvedBefore(ctx context.Context, cutoffDays int) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
