// Package auth contains authentication and session use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles account creation. It does not open a session;
// the user logs in afterwards.
type RegisterUserUseCase struct {
	gateway adapter.AuthGateway
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(gateway adapter.AuthGateway) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		gateway: gateway,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"all fields are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	if !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if len(input.Password) < MinPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
			domainerror.ErrWeakPassword,
		)
	}

	if input.Password != input.ConfirmPassword {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePasswordMismatch,
			"passwords do not match",
			domainerror.ErrPasswordMismatch,
		)
	}

	user, err := uc.gateway.Register(ctx, adapter.Registration{
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		Password:  input.Password,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}
