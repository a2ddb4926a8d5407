package context

import (
	"context"

	"gaspass/internal/domain/service"
)

// WithClaims returns a new context carrying the verified session claims.
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}

// GetClaims extracts verified session claims from the context.
// Returns nil on unauthenticated requests.
func GetClaims(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(KeyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}
