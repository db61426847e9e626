package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDto "github.com/aura-ai/aura-backend/internal/adapter/dto/auth"
	"github.com/aura-ai/aura-backend/internal/adapter/presenter"
	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a new account with email and password
// POST /v1/auth/signup
func (h *Auth) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDto.SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	persona := entities.UserPersona(req.Persona)
	if req.Persona == "" {
		persona = entities.PersonaEmployee
	}

	resp, err := h.authService.Signup(ctx, req.Email, req.Name, req.Password, persona)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// Login authenticates with email and password
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// GoogleLogin handles the initial Google OAuth login request
// GET /v1/auth/google/login
func (h *Auth) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	authURL, err := h.authService.GetGoogleAuthURL(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL.URL)
}

// GoogleCallback handles the OAuth callback from Google
// GET /v1/auth/google/callback
func (h *Auth) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return HandleError(h.logger, c, entities.ErrOAuthCodeInvalid)
	}

	resp, err := h.authService.HandleGoogleCallback(ctx, &auth.GoogleCallbackRequest{
		Code:  code,
		State: state,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// RefreshToken refreshes the access token
// POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDto.RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// Logout revokes the session behind a refresh token
// POST /v1/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDto.LogoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{
		"message": "Logged out successfully",
	})
}

// Me returns the current user information
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"user": presenter.ToUserResponse(user),
	})
}
