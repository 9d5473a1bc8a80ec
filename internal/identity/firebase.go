// Package identity wraps the external identity provider. Sign-up, sign-in and
// password handling all live in Firebase Auth; this backend only verifies the
// ID tokens it issues.
package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"orghub-backend/internal/domain"
)

// Identity is the subset of provider claims this backend cares about.
type Identity struct {
	UID           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

type Provider interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

type firebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(ctx context.Context, projectID, credentialsFile string) (Provider, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &firebaseProvider{client: client}, nil
}

func (p *firebaseProvider) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domain.UnauthenticatedError("invalid identity token")
	}

	ident := &Identity{UID: token.UID}
	if v, ok := token.Claims["email"].(string); ok {
		ident.Email = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		ident.Name = v
	}
	if v, ok := token.Claims["picture"].(string); ok {
		ident.Picture = v
	}
	if v, ok := token.Claims["email_verified"].(bool); ok {
		ident.EmailVerified = v
	}
	return ident, nil
}
