package http

import (
	"context"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/security"
)

type contextKey string

const (
	claimsContextKey    contextKey = "claims"
	requestIDContextKey contextKey = "request_id"
)

// ClaimsFromContext extracts the authenticated session claims injected by the
// auth middleware.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return nil, domain.UnauthenticatedError("authentication required")
	}
	return claims, nil
}

// RequestIDFromContext returns the correlation ID for the current request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
