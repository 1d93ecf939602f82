package handler

import (
	"log/slog"
	"net/http"

	"fitmarket/internal/delivery/http/response"
	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerUserRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"omitempty,oneof=user instructor admin"`
	FitnessGoals string `json:"fitnessGoals"`
}

type updateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password" validate:"omitempty,min=6"`
	FitnessGoals *string `json:"fitnessGoals"`
}

// Register handles the account creation request.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerUserRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password,
		Role:         input.Role,
		FitnessGoals: input.FitnessGoals,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user.Public())
}

// List returns every user account.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	publics := make([]*entity.PublicUser, 0, len(users))
	for _, user := range users {
		publics = append(publics, user.Public())
	}

	return response.List(c, http.StatusOK, len(publics), publics)
}

// Get returns a single user account.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Public())
}

// Update modifies a user account.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input updateUserRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid update payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateUserInput{
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password,
		FitnessGoals: input.FitnessGoals,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Public())
}

// Delete removes a user account and its sessions.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"message": "User deleted"})
}
