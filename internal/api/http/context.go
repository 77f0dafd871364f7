package http

import (
	"context"

	"equiprent-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "customer_claims"

// ClaimsFromContext returns the authenticated customer's claims, if the
// request passed the auth middleware.
func ClaimsFromContext(ctx context.Context) (*security.CustomerClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.CustomerClaims)
	return claims, ok
}

func withClaims(ctx context.Context, claims *security.CustomerClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}
