package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/web/internal/integration/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestRateLimiter(t *testing.T) {
	newEngine := func(rl *RateLimiter) *gin.Engine {
		engine := gin.New()
		engine.POST("/login", rl.Middleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}
	login := func(engine *gin.Engine, ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("blocks after the maximum attempts", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
		engine := newEngine(NewRateLimiterWithConfig(3, time.Minute, true, clock.Now))

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, login(engine, "10.0.0.1").Code)
		}

		w := login(engine, "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, string(domainerror.ErrCodeRateLimited), body.Code)

		assert.Equal(t, http.StatusOK, login(engine, "10.0.0.2").Code)
	})

	t.Run("window resets", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
		engine := newEngine(NewRateLimiterWithConfig(1, time.Minute, true, clock.Now))

		assert.Equal(t, http.StatusOK, login(engine, "10.0.0.1").Code)
		assert.Equal(t, http.StatusTooManyRequests, login(engine, "10.0.0.1").Code)

		clock.now = clock.now.Add(61 * time.Second)
		assert.Equal(t, http.StatusOK, login(engine, "10.0.0.1").Code)
	})

	t.Run("disabled limiter lets everything through", func(t *testing.T) {
		engine := newEngine(NewRateLimiterWithConfig(1, time.Minute, false, nil))
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, login(engine, "10.0.0.1").Code)
		}
	})

	t.Run("cleanup and reset drop entries", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
		rl := NewRateLimiterWithConfig(1, time.Minute, true, clock.Now)
		require.True(t, rl.allow("a"))
		require.True(t, rl.allow("b"))

		clock.now = clock.now.Add(2 * time.Minute)
		rl.Cleanup()
		assert.Empty(t, rl.entries)

		require.True(t, rl.allow("a"))
		require.False(t, rl.allow("a"))
		rl.Reset()
		assert.True(t, rl.allow("a"))
	})

	t.Run("defaults replace invalid settings", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(0, 0, true, nil)
		assert.Equal(t, defaultMaxAttempts, rl.maxAttempts)
		assert.Equal(t, defaultWindowDuration, rl.windowDuration)
	})

	t.Run("run stops with its context", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Millisecond, true, nil)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			rl.Run(ctx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}

func TestSessionMiddleware(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: now}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := session.NewRedisStore(client)
	sessions := auth.NewSessionUseCase(store, session.NewTokenInspector(), clock.Now)
	mw := NewSessionMiddleware(sessions, "")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("remote-secret"))
	require.NoError(t, err)

	userID := int64(42)
	require.NoError(t, store.Set(ctx, &entity.Session{
		ID:    "live",
		Token: token,
		User:  &entity.User{ID: &userID, Username: "alice"},
	}, time.Hour))

	engine := gin.New()
	engine.GET("/private", mw.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		accessToken, _ := adapter.AccessTokenFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id":    id,
			"has_user":   ok,
			"session_id": GetSessionIDFromContext(c),
			"token":      accessToken,
		})
	})

	tests := []struct {
		name       string
		cookie     string
		header     string
		advance    time.Duration
		wantStatus int
		wantCode   string
	}{
		{name: "session from header", header: "live", wantStatus: http.StatusOK},
		{name: "session from cookie", cookie: "live", header: "other", wantStatus: http.StatusOK},
		{name: "missing session", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeMissingSession)},
		{name: "unknown session", header: "nope", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeMissingSession)},
		{name: "expired token", header: "live", advance: 2 * time.Hour, wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeExpiredToken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.now = now.Add(tt.advance)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				var body dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, float64(42), body["user_id"])
			assert.Equal(t, true, body["has_user"])
			assert.Equal(t, "live", body["session_id"])
			assert.Equal(t, token, body["token"])
		})
	}
}
