package service

import (
	"context"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/identity"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/security"
)

type authService struct {
	provider identity.Provider
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(provider identity.Provider, userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		provider: provider,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) ExchangeSession(ctx context.Context, idToken string) (*domain.User, string, string, error) {
	ident, err := s.provider.Verify(ctx, idToken)
	if err != nil {
		return nil, "", "", err
	}
	if ident.Email == "" {
		return nil, "", "", domain.UnauthenticatedError("identity token carries no email")
	}

	user, err := s.userRepo.GetByFirebaseUID(ctx, ident.UID)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, "", "", err
		}
		// First session for this identity: provision the local user row.
		user = &domain.User{
			FirebaseUID: ident.UID,
			Email:       ident.Email,
			Name:        ident.Name,
			AvatarURL:   ident.Picture,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, "", "", err
		}
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.UnauthenticatedError("invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.UnauthenticatedError("refresh token required")
	}

	access, err := s.tokens.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(claims.UserID, claims.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
