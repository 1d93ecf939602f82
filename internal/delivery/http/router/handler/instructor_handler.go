package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitmarket/internal/delivery/http/response"
	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InstructorHandler holds dependencies for instructor profile handlers.
type InstructorHandler struct {
	uc     usecase.InstructorUsecase
	logger *slog.Logger
}

// NewInstructorHandler is the constructor for InstructorHandler, injected by Fx.
func NewInstructorHandler(uc usecase.InstructorUsecase, logger *slog.Logger) *InstructorHandler {
	return &InstructorHandler{
		uc:     uc,
		logger: logger,
	}
}

type createInstructorRequest struct {
	UserID          string   `json:"userId" validate:"required,uuid"`
	Biography       string   `json:"biography" validate:"required"`
	Specialties     []string `json:"specialties"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0"`
}

type updateInstructorRequest struct {
	Biography       *string  `json:"biography"`
	Specialties     []string `json:"specialties"`
	ExperienceYears *int     `json:"experienceYears" validate:"omitempty,gte=0"`
	IsVerified      *bool    `json:"isVerified"`
}

type instructorResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Biography       string    `json:"biography"`
	Specialties     []string  `json:"specialties"`
	ExperienceYears int       `json:"experienceYears"`
	AverageRating   float64   `json:"averageRating"`
	TotalReviews    int       `json:"totalReviews"`
	IsVerified      bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toInstructorResponse(instructor *entity.Instructor) *instructorResponse {
	if instructor == nil {
		return nil
	}

	return &instructorResponse{
		ID:              instructor.ID,
		UserID:          instructor.UserID,
		Biography:       instructor.Biography,
		Specialties:     instructor.Specialties,
		ExperienceYears: instructor.ExperienceYears,
		AverageRating:   instructor.AverageRating,
		TotalReviews:    instructor.TotalReviews,
		IsVerified:      instructor.IsVerified,
		CreatedAt:       instructor.CreatedAt,
	}
}

// Create handles the instructor profile creation request.
func (h *InstructorHandler) Create(c echo.Context) error {
	var input createInstructorRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid instructor payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid user id")
	}

	instructor, err := h.uc.Create(c.Request().Context(), usecase.CreateInstructorInput{
		UserID:          userID,
		Biography:       input.Biography,
		Specialties:     input.Specialties,
		ExperienceYears: input.ExperienceYears,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toInstructorResponse(instructor))
}

// List returns every instructor profile.
func (h *InstructorHandler) List(c echo.Context) error {
	instructors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*instructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, toInstructorResponse(instructor))
	}

	return response.List(c, http.StatusOK, len(items), items)
}

// Get returns a single instructor profile.
func (h *InstructorHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	instructor, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInstructorResponse(instructor))
}

// Update modifies an instructor profile.
func (h *InstructorHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input updateInstructorRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid update payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	instructor, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateInstructorInput{
		Biography:       input.Biography,
		Specialties:     input.Specialties,
		ExperienceYears: input.ExperienceYears,
		IsVerified:      input.IsVerified,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInstructorResponse(instructor))
}

// Delete removes an instructor profile.
func (h *InstructorHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"message": "Instructor deleted"})
}
