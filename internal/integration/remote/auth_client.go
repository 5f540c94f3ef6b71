// Package remote implements the data-source adapters against the remote
// expense, budget and auth API.
package remote

import (
	"context"
	"net/http"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
)

const authPath = "/api/auth"

// LoginRequest is the remote login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the remote registration payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// authClient implements the adapter.AuthGateway interface.
type authClient struct {
	client *Client
}

// NewAuthClient creates a new remote auth gateway.
func NewAuthClient(client *Client) adapter.AuthGateway {
	return &authClient{
		client: client,
	}
}

// Login authenticates the credentials.
func (c *authClient) Login(ctx context.Context, credentials adapter.Credentials) (*entity.User, error) {
	var model UserModel
	request := LoginRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	}
	if err := do(ctx, c.client, http.MethodPost, authPath+"/login", nil, request, &model); err != nil {
		return nil, err
	}
	return model.ToEntity(), nil
}

// Register creates an account.
func (c *authClient) Register(ctx context.Context, registration adapter.Registration) (*entity.User, error) {
	var model UserModel
	request := RegisterRequest{
		Username:  registration.Username,
		Email:     registration.Email,
		Password:  registration.Password,
		FirstName: registration.FirstName,
		LastName:  registration.LastName,
	}
	if err := do(ctx, c.client, http.MethodPost, authPath+"/register", nil, request, &model); err != nil {
		return nil, err
	}
	return model.ToEntity(), nil
}
