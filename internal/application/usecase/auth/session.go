// Package auth contains authentication and session use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// SessionUseCase answers questions about the current browser session.
type SessionUseCase struct {
	sessions  adapter.SessionStore
	inspector adapter.TokenInspector
	clock     adapter.Clock
}

// NewSessionUseCase creates a new SessionUseCase instance.
func NewSessionUseCase(
	sessions adapter.SessionStore,
	inspector adapter.TokenInspector,
	clock adapter.Clock,
) *SessionUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &SessionUseCase{
		sessions:  sessions,
		inspector: inspector,
		clock:     clock,
	}
}

// Current returns the session if it exists and its token has not expired.
// An expired session is cleared.
func (uc *SessionUseCase) Current(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingSession,
			"authentication required",
			domainerror.ErrSessionNotFound,
		)
	}

	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingSession,
				"authentication required",
				domainerror.ErrSessionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if uc.expired(session.Token) {
		if err := uc.sessions.Clear(ctx, sessionID); err != nil {
			slog.Warn("Failed to clear expired session", "error", err)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeExpiredToken,
			"your session has expired, please log in again",
			domainerror.ErrExpiredToken,
		)
	}

	return session, nil
}

// GetToken returns the bearer token of the session, or "" when there is none.
func (uc *SessionUseCase) GetToken(ctx context.Context, sessionID string) string {
	session, err := uc.Current(ctx, sessionID)
	if err != nil {
		return ""
	}
	return session.Token
}

// IsLoggedIn reports whether the session holds a token that has not expired.
func (uc *SessionUseCase) IsLoggedIn(ctx context.Context, sessionID string) bool {
	return uc.GetToken(ctx, sessionID) != ""
}

// Logout clears the session.
func (uc *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// HandleRemoteError clears the session when err is the remote API's
// authentication failure. It reports whether the session was cleared.
func (uc *SessionUseCase) HandleRemoteError(ctx context.Context, sessionID string, err error) bool {
	if !errors.Is(err, domainerror.ErrRemoteUnauthorized) {
		return false
	}
	if clearErr := uc.Logout(ctx, sessionID); clearErr != nil {
		slog.Warn("Failed to clear rejected session", "error", clearErr)
	}
	slog.Info("Session cleared after remote authentication failure")
	return true
}

func (uc *SessionUseCase) expired(token string) bool {
	if token == "" || uc.inspector == nil {
		return false
	}
	expiresAt, ok, err := uc.inspector.ExpiresAt(token)
	if err != nil || !ok {
		return false
	}
	return !uc.clock().Before(expiresAt)
}
