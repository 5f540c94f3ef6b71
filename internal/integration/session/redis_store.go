// Package session implements the session store and token inspection.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// KeyPrefix namespaces session keys.
const KeyPrefix = "session:"

// record is the stored form of a session.
type record struct {
	Token string      `json:"token,omitempty"`
	User  *userRecord `json:"user,omitempty"`
}

type userRecord struct {
	ID        *int64 `json:"id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

// redisStore implements the adapter.SessionStore interface.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client) adapter.SessionStore {
	return &redisStore{
		client: client,
	}
}

// Get retrieves a session by its identifier.
func (s *redisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, KeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var stored record
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	session := &entity.Session{
		ID:    id,
		Token: stored.Token,
	}
	if stored.User != nil {
		session.User = &entity.User{
			ID:        stored.User.ID,
			Username:  stored.User.Username,
			Email:     stored.User.Email,
			FirstName: stored.User.FirstName,
			LastName:  stored.User.LastName,
			Role:      stored.User.Role,
			Token:     stored.Token,
		}
	}
	return session, nil
}

// Set stores a session. A non-positive ttl stores it without expiry.
func (s *redisStore) Set(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	stored := record{Token: session.Token}
	if session.User != nil {
		stored.User = &userRecord{
			ID:        session.User.ID,
			Username:  session.User.Username,
			Email:     session.User.Email,
			FirstName: session.User.FirstName,
			LastName:  session.User.LastName,
			Role:      session.User.Role,
		}
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, KeyPrefix+session.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes a session.
func (s *redisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, KeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
