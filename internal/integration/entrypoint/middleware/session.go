// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionKey is the context key for the current session.
	SessionKey ContextKey = "session"
	// SessionIDKey is the context key for the raw session identifier.
	SessionIDKey ContextKey = "session_id"
)

const (
	// DefaultSessionCookie is the cookie carrying the session identifier.
	DefaultSessionCookie = "session_id"
	// SessionHeader is the header alternative to the session cookie.
	SessionHeader = "X-Session-ID"
)

// SessionMiddleware resolves the browser session for protected routes.
type SessionMiddleware struct {
	sessions   *auth.SessionUseCase
	cookieName string
}

// NewSessionMiddleware creates a new session middleware instance.
func NewSessionMiddleware(sessions *auth.SessionUseCase, cookieName string) *SessionMiddleware {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// SessionIDFromRequest returns the session identifier sent with the
// request. The cookie wins over the header.
func SessionIDFromRequest(c *gin.Context, cookieName string) string {
	if id, err := c.Cookie(cookieName); err == nil && id != "" {
		return id
	}
	return c.GetHeader(SessionHeader)
}

// Authenticate returns a Gin middleware handler that requires a live session.
// The session's bearer token is attached to the request context for the
// outbound remote calls.
func (m *SessionMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := SessionIDFromRequest(c, m.cookieName)

		session, err := m.sessions.Current(c.Request.Context(), sessionID)
		if err != nil {
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
					Error: authErr.Message,
					Code:  string(authErr.Code),
				})
				c.Abort()
				return
			}

			slog.Error("Failed to resolve session", "error", err)
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "session store unavailable",
			})
			c.Abort()
			return
		}

		c.Set(string(SessionKey), session)
		c.Set(string(SessionIDKey), sessionID)
		c.Request = c.Request.WithContext(
			adapter.ContextWithAccessToken(c.Request.Context(), session.Token),
		)

		c.Next()
	}
}

// GetSessionFromContext extracts the session from the Gin context.
func GetSessionFromContext(c *gin.Context) (*entity.Session, bool) {
	value, exists := c.Get(string(SessionKey))
	if !exists {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok && session != nil
}

// GetSessionIDFromContext extracts the session identifier from the Gin context.
func GetSessionIDFromContext(c *gin.Context) string {
	return c.GetString(string(SessionIDKey))
}

// GetUserIDFromContext extracts the remote user ID of the session user.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	session, ok := GetSessionFromContext(c)
	if !ok || session.User == nil || session.User.ID == nil {
		return 0, false
	}
	return *session.User.ID, true
}
