package http

import (
	"context"

	"orghub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ExchangeSession(ctx context.Context, idToken string) (*domain.User, string, string, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int32) (*domain.User, []domain.Organization, []domain.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.User), args.Get(1).([]domain.Organization), args.Get(2).([]domain.Membership), args.Error(3)
}
func (m *MockUserService) UpdateProfile(ctx context.Context, userID int32, name, avatarURL string) error {
	args := m.Called(ctx, userID, name, avatarURL)
	return args.Error(0)
}

type MockOrgService struct {
	mock.Mock
}

func (m *MockOrgService) CreateOrganization(ctx context.Context, userID int32, org *domain.Organization) error {
	args := m.Called(ctx, userID, org)
	return args.Error(0)
}
func (m *MockOrgService) GetOrganization(ctx context.Context, slug string) (*domain.Organization, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrgService) ListMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Get(1).([]domain.Membership), args.Error(2)
}
func (m *MockOrgService) GetMembership(ctx context.Context, userID, orgID int32) (*domain.Membership, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) Create(ctx context.Context, orgID, roleID int32, email string, invitedBy int32) (*domain.Invitation, error) {
	args := m.Called(ctx, orgID, roleID, email, invitedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationService) Validate(ctx context.Context, token string) (*domain.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationService) Accept(ctx context.Context, token string, actingUserID int32, actingUserEmail string) (*domain.Organization, error) {
	args := m.Called(ctx, token, actingUserID, actingUserEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockInvitationService) Decline(ctx context.Context, token string, actingUserEmail string) error {
	args := m.Called(ctx, token, actingUserEmail)
	return args.Error(0)
}
func (m *MockInvitationService) Resend(ctx context.Context, id, orgID int32) (*domain.Invitation, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationService) Cancel(ctx context.Context, id, orgID int32) error {
	args := m.Called(ctx, id, orgID)
	return args.Error(0)
}
func (m *MockInvitationService) ListByOrg(ctx context.Context, orgID int32) ([]domain.Invitation, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Invitation), args.Error(1)
}
func (m *MockInvitationService) RequestAccess(ctx context.Context, orgID int32, email string) (*domain.Invitation, error) {
	args := m.Called(ctx, orgID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
