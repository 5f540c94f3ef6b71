// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-tracker/web/internal/domain/entity"
)

// SessionStore defines the key/value capability holding a session's token
// and user object.
type SessionStore interface {
	// Get returns the session, or domainerror.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Set stores the session for at most ttl.
	Set(ctx context.Context, session *entity.Session, ttl time.Duration) error

	// Clear removes the session. Clearing a missing session is not an error.
	Clear(ctx context.Context, id string) error
}
