// Package fixture provides in-process data sources seeded with sample data,
// used when no remote API is configured.
package fixture

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

const (
	// DemoUsername and DemoPassword log into the seeded account.
	DemoUsername = "demo"
	DemoPassword = "demo123"

	tokenLifetime = 24 * time.Hour
	defaultRole   = "USER"
)

type account struct {
	user         entity.User
	passwordHash []byte
}

// AuthGateway authenticates against in-memory accounts and issues signed
// tokens carrying an expiry.
type AuthGateway struct {
	mu       sync.Mutex
	clock    adapter.Clock
	secret   []byte
	nextID   int64
	accounts map[string]*account
}

// NewAuthGateway creates a gateway holding the demo account.
func NewAuthGateway(secret string, clock adapter.Clock) (*AuthGateway, error) {
	if clock == nil {
		clock = time.Now
	}
	g := &AuthGateway{
		clock:    clock,
		secret:   []byte(secret),
		accounts: make(map[string]*account),
	}
	_, err := g.Register(context.Background(), adapter.Registration{
		Username:  DemoUsername,
		Email:     "demo@example.com",
		Password:  DemoPassword,
		FirstName: "Demo",
		LastName:  "User",
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Login verifies the password and returns the user with a fresh token.
func (g *AuthGateway) Login(_ context.Context, credentials adapter.Credentials) (*entity.User, error) {
	g.mu.Lock()
	acc, ok := g.accounts[strings.ToLower(credentials.Username)]
	g.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(credentials.Password)) != nil {
		return nil, domainerror.NewRemoteError(401, "Invalid username or password", domainerror.ErrRemoteUnauthorized)
	}

	token, err := g.issueToken(acc.user)
	if err != nil {
		return nil, err
	}

	user := acc.user
	user.Token = token
	return &user, nil
}

// Register creates an account. Usernames are case-insensitive.
func (g *AuthGateway) Register(_ context.Context, registration adapter.Registration) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := strings.ToLower(registration.Username)
	if _, exists := g.accounts[key]; exists {
		return nil, domainerror.NewRemoteError(400, "Username is already taken", domainerror.ErrRemoteRejected)
	}

	g.nextID++
	id := g.nextID
	acc := &account{
		user: entity.User{
			ID:        &id,
			Username:  registration.Username,
			Email:     registration.Email,
			FirstName: registration.FirstName,
			LastName:  registration.LastName,
			Role:      defaultRole,
		},
		passwordHash: hash,
	}
	g.accounts[key] = acc

	user := acc.user
	return &user, nil
}

func (g *AuthGateway) issueToken(user entity.User) (string, error) {
	now := g.clock().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(*user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		Issuer:    "expense-tracker-fixture",
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
