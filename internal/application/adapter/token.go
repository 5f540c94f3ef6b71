// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

type accessTokenKey struct{}

// ContextWithAccessToken returns a context carrying the bearer token used
// for outbound remote calls.
func ContextWithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the bearer token carried by ctx.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// TokenInspector reads the expiry of a bearer token.
type TokenInspector interface {
	// ExpiresAt returns the token expiry; ok is false when the token carries none.
	ExpiresAt(token string) (expiresAt time.Time, ok bool, err error)
}

// Clock returns the current time.
type Clock func() time.Time
