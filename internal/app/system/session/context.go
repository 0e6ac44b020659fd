package session

import (
	"context"
	"net/http"
)

type ctxKey string

const claimsKey ctxKey = "sessionClaims"

// WithClaims returns a request whose context carries the session claims.
func WithClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}

// CurrentClaims returns the claims placed in context by the auth gate,
// plus a "found?" flag.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

// WithTestClaims injects claims directly into a context. Handler tests
// use this to skip the gate.
func WithTestClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}
