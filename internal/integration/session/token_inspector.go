// Package session implements the session store and token inspection.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/expense-tracker/web/internal/application/adapter"
)

// tokenInspector implements the adapter.TokenInspector interface.
// Tokens are issued and verified by the remote API; only the expiry
// claim is read here.
type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector creates a new token inspector.
func NewTokenInspector() adapter.TokenInspector {
	return &tokenInspector{
		parser: jwt.NewParser(),
	}
}

// ExpiresAt returns the exp claim of token. Tokens that are not JWTs are
// treated as carrying no expiry.
func (i *tokenInspector) ExpiresAt(token string) (time.Time, bool, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}
