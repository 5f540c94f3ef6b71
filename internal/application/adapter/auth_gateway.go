// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/web/internal/domain/entity"
)

// Credentials holds the login form values.
type Credentials struct {
	Username string
	Password string
}

// Registration holds the registration form values.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthGateway defines the remote login/register pair.
type AuthGateway interface {
	// Login authenticates and returns the user carrying a bearer token.
	Login(ctx context.Context, credentials Credentials) (*entity.User, error)

	// Register creates an account.
	Register(ctx context.Context, registration Registration) (*entity.User, error)
}
