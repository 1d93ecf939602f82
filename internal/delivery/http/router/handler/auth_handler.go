// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fitmarket/internal/delivery/http/middleware"
	"fitmarket/internal/delivery/http/response"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, pair, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
		Client:   clientInfo(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user":         user.Public(),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// RefreshToken handles the token rotation request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid refresh payload")
	}
	if input.RefreshToken == "" {
		return domainerrors.ErrRefreshTokenRequired
	}

	pair, err := h.uc.Refresh(c.Request().Context(), input.RefreshToken, clientInfo(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Logout handles the logout request. The refresh token travels in the body;
// the route itself is protected by the bearer token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid logout payload")
	}
	if input.RefreshToken == "" {
		return domainerrors.ErrRefreshTokenRequired
	}

	if err := h.uc.Logout(c.Request().Context(), input.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"message": "Logged out successfully",
	})
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Not authorized, user not found")
	}

	return response.Success(c, http.StatusOK, user.Public())
}

// clientInfo collects request metadata recorded against a session.
func clientInfo(c echo.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request().UserAgent(),
		IP:        c.RealIP(),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, echo.Map{"status": "ok"})
}
