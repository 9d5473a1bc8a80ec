package service_test

import (
	"context"
	"testing"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/identity"
	"orghub-backend/internal/security"
	"orghub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "unit-test-secret-at-least-32-chars-long"

func TestExchangeSession_ProvisionsNewUser(t *testing.T) {
	provider := new(MockIdentityProvider)
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	svc := service.NewAuthService(provider, userRepo, tokens)
	ctx := context.Background()

	provider.On("Verify", ctx, "firebase-id-token").Return(&identity.Identity{
		UID:   "fb-uid-1",
		Email: "new@example.com",
		Name:  "New User",
	}, nil)
	userRepo.On("GetByFirebaseUID", ctx, "fb-uid-1").
		Return(nil, domain.NotFoundError("user not found"))
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.FirebaseUID == "fb-uid-1" && u.Email == "new@example.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 9
	}).Return(nil)

	user, access, refresh, err := svc.ExchangeSession(ctx, "firebase-id-token")

	assert.NoError(t, err)
	assert.Equal(t, int32(9), user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := tokens.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, int32(9), claims.UserID)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
	userRepo.AssertExpectations(t)
}

func TestExchangeSession_ExistingUserNotRecreated(t *testing.T) {
	provider := new(MockIdentityProvider)
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	svc := service.NewAuthService(provider, userRepo, tokens)
	ctx := context.Background()

	provider.On("Verify", ctx, "firebase-id-token").Return(&identity.Identity{
		UID:   "fb-uid-1",
		Email: "known@example.com",
	}, nil)
	userRepo.On("GetByFirebaseUID", ctx, "fb-uid-1").
		Return(&domain.User{ID: 3, Email: "known@example.com"}, nil)

	user, _, _, err := svc.ExchangeSession(ctx, "firebase-id-token")

	assert.NoError(t, err)
	assert.Equal(t, int32(3), user.ID)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExchangeSession_InvalidIdentityToken(t *testing.T) {
	provider := new(MockIdentityProvider)
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	svc := service.NewAuthService(provider, userRepo, tokens)
	ctx := context.Background()

	provider.On("Verify", ctx, "garbage").
		Return(nil, domain.UnauthenticatedError("invalid identity token"))

	_, _, _, err := svc.ExchangeSession(ctx, "garbage")

	assert.True(t, domain.IsKind(err, domain.KindUnauthenticated))
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	provider := new(MockIdentityProvider)
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	svc := service.NewAuthService(provider, userRepo, tokens)

	access, err := tokens.GenerateAccessToken(3, "known@example.com")
	assert.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), access)

	assert.True(t, domain.IsKind(err, domain.KindUnauthenticated))
}

func TestRefresh_RotatesTokens(t *testing.T) {
	provider := new(MockIdentityProvider)
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	svc := service.NewAuthService(provider, userRepo, tokens)

	refresh, err := tokens.GenerateRefreshToken(3, "known@example.com")
	assert.NoError(t, err)

	newAccess, newRefresh, err := svc.Refresh(context.Background(), refresh)

	assert.NoError(t, err)
	claims, err := tokens.ValidateToken(newAccess)
	assert.NoError(t, err)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
	assert.Equal(t, int32(3), claims.UserID)

	claims, err = tokens.ValidateToken(newRefresh)
	assert.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
}
