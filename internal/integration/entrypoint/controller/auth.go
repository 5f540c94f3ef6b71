// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/usecase/auth"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/web/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	sessionUseCase  *auth.SessionUseCase
	cookie          SessionCookie
	responder       errorResponder
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	sessionUseCase *auth.SessionUseCase,
	cookie SessionCookie,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		sessionUseCase:  sessionUseCase,
		cookie:          cookie,
		responder:       errorResponder{sessions: sessionUseCase, cookie: cookie},
	}
}

// Register handles POST /auth/register requests.
// Registration does not log the user in.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Please fill in all fields",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.RegisterUserInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "register")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Please enter both username and password",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "login")
		return
	}

	c.cookie.set(ctx, output.Session.ID, int(output.ExpiresIn.Seconds()))

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		SessionID: output.Session.ID,
		ExpiresIn: int64(output.ExpiresIn.Seconds()),
		User:      dto.ToUserResponse(output.Session.User),
	})
}

// Logout handles POST /auth/logout requests.
// Logging out without a session succeeds.
func (c *AuthController) Logout(ctx *gin.Context) {
	sessionID := middleware.SessionIDFromRequest(ctx, c.cookie.name())

	if err := c.sessionUseCase.Logout(ctx.Request.Context(), sessionID); err != nil {
		slog.Error("Failed to clear session", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	c.cookie.clear(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Logged out successfully",
	})
}

// Me handles GET /auth/me requests.
func (c *AuthController) Me(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "authentication required",
			Code:  string(domainerror.ErrCodeMissingSession),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		LoggedIn: true,
		User:     dto.ToUserResponse(session.User),
	})
}
