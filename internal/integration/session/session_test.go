package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *redisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &redisStore{client: client}
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	id := int64(7)

	t.Run("round trips token and user", func(t *testing.T) {
		_, store := newStore(t)
		session := &entity.Session{
			ID:    "abc",
			Token: "jwt",
			User:  &entity.User{ID: &id, Username: "alice", Email: "alice@example.com", Role: "USER"},
		}

		require.NoError(t, store.Set(ctx, session, time.Hour))

		got, err := store.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "jwt", got.Token)
		assert.Equal(t, "alice", got.User.Username)
		assert.Equal(t, int64(7), *got.User.ID)
		assert.Equal(t, "jwt", got.User.Token)
		assert.True(t, got.HasRole("USER"))
	})

	t.Run("expires with the ttl", func(t *testing.T) {
		mr, store := newStore(t)
		require.NoError(t, store.Set(ctx, &entity.Session{ID: "short", Token: "jwt"}, time.Minute))

		mr.FastForward(2 * time.Minute)

		_, err := store.Get(ctx, "short")
		require.ErrorIs(t, err, domainerror.ErrSessionNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		mr, store := newStore(t)
		require.NoError(t, store.Set(ctx, &entity.Session{ID: "gone", User: &entity.User{Username: "bob"}}, 0))
		assert.True(t, mr.Exists(KeyPrefix+"gone"))

		require.NoError(t, store.Clear(ctx, "gone"))
		require.NoError(t, store.Clear(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		require.ErrorIs(t, err, domainerror.ErrSessionNotFound)
	})
}

func TestTokenInspector(t *testing.T) {
	inspector := NewTokenInspector()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("remote-secret"))
	require.NoError(t, err)

	got, ok, err := inspector.ExpiresAt(signed)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(exp))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "7"}).SignedString([]byte("x"))
	require.NoError(t, err)
	_, ok, err = inspector.ExpiresAt(noExp)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = inspector.ExpiresAt("opaque-token")
	assert.Error(t, err)
}
