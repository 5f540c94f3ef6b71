// Package auth contains authentication and session use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Session   *entity.Session
	ExpiresIn time.Duration
}

// LoginUserUseCase authenticates against the remote API and opens a session.
type LoginUserUseCase struct {
	gateway    adapter.AuthGateway
	sessions   adapter.SessionStore
	inspector  adapter.TokenInspector
	clock      adapter.Clock
	sessionTTL time.Duration
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
// sessionTTL bounds sessions whose token carries no expiry.
func NewLoginUserUseCase(
	gateway adapter.AuthGateway,
	sessions adapter.SessionStore,
	inspector adapter.TokenInspector,
	clock adapter.Clock,
	sessionTTL time.Duration,
) *LoginUserUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &LoginUserUseCase{
		gateway:    gateway,
		sessions:   sessions,
		inspector:  inspector,
		clock:      clock,
		sessionTTL: sessionTTL,
	}
}

// Execute performs the login. The token is stored only when the remote API
// returned one; the user object is always stored.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"please enter both username and password",
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := uc.gateway.Login(ctx, adapter.Credentials{
		Username: username,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrRemoteUnauthorized) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"invalid username or password",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	ttl := uc.sessionTTL
	if user.Token != "" && uc.inspector != nil {
		expiresAt, ok, err := uc.inspector.ExpiresAt(user.Token)
		if err != nil {
			slog.Warn("Could not read token expiry", "error", err)
		} else if ok {
			ttl = expiresAt.Sub(uc.clock())
			if ttl <= 0 {
				return nil, domainerror.NewAuthError(
					domainerror.ErrCodeExpiredToken,
					"the issued token has already expired",
					domainerror.ErrExpiredToken,
				)
			}
		}
	}

	session := &entity.Session{
		ID:    uuid.NewString(),
		Token: user.Token,
		User:  user,
	}

	if err := uc.sessions.Set(ctx, session, ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	slog.Info("User logged in", "username", user.Username, "has_token", user.Token != "")

	return &LoginUserOutput{
		Session:   session,
		ExpiresIn: ttl,
	}, nil
}
