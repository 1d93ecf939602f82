package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitmarket/internal/delivery/http/middleware"
	"fitmarket/internal/delivery/http/response"
	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClassHandler holds dependencies for class catalog handlers.
type ClassHandler struct {
	uc     usecase.ClassUsecase
	logger *slog.Logger
}

// NewClassHandler is the constructor for ClassHandler, injected by Fx.
func NewClassHandler(uc usecase.ClassUsecase, logger *slog.Logger) *ClassHandler {
	return &ClassHandler{
		uc:     uc,
		logger: logger,
	}
}

type createClassRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Description     string     `json:"description" validate:"required"`
	InstructorID    string     `json:"instructorId" validate:"required,uuid"`
	DurationMinutes int        `json:"durationMinutes" validate:"required,gte=1"`
	Type            string     `json:"type" validate:"required,oneof=live recorded"`
	Category        string     `json:"category" validate:"required,oneof=yoga cardio strength hiit dance pilates other"`
	Difficulty      string     `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Capacity        int        `json:"capacity" validate:"gte=0"`
	Price           float64    `json:"price" validate:"gte=0"`
	VideoURL        string     `json:"videoUrl"`
	StartTime       *time.Time `json:"startTime"`
}

type updateClassRequest struct {
	Title           *string    `json:"title" validate:"omitempty,max=200"`
	Description     *string    `json:"description"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,gte=1"`
	Category        *string    `json:"category" validate:"omitempty,oneof=yoga cardio strength hiit dance pilates other"`
	Difficulty      *string    `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Capacity        *int       `json:"capacity" validate:"omitempty,gte=0"`
	Price           *float64   `json:"price" validate:"omitempty,gte=0"`
	VideoURL        *string    `json:"videoUrl"`
	StartTime       *time.Time `json:"startTime"`
	IsAvailable     *bool      `json:"isAvailable"`
}

type classResponse struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	InstructorID    uuid.UUID   `json:"instructorId"`
	DurationMinutes int         `json:"durationMinutes"`
	Type            string      `json:"type"`
	Category        string      `json:"category"`
	Difficulty      string      `json:"difficulty"`
	Capacity        int         `json:"capacity"`
	Price           float64     `json:"price"`
	VideoURL        string      `json:"videoUrl,omitempty"`
	StartTime       *time.Time  `json:"startTime,omitempty"`
	EnrolledUserIDs []uuid.UUID `json:"enrolledUsers"`
	IsAvailable     bool        `json:"isAvailable"`
	CreatedAt       time.Time   `json:"createdAt"`
}

func toClassResponse(class *entity.Class) *classResponse {
	if class == nil {
		return nil
	}

	enrolled := class.EnrolledUserIDs
	if enrolled == nil {
		enrolled = []uuid.UUID{}
	}

	return &classResponse{
		ID:              class.ID,
		Title:           class.Title,
		Description:     class.Description,
		InstructorID:    class.InstructorID,
		DurationMinutes: class.DurationMinutes,
		Type:            class.Type.String(),
		Category:        class.Category,
		Difficulty:      class.Difficulty,
		Capacity:        class.Capacity,
		Price:           class.Price,
		VideoURL:        class.VideoURL,
		StartTime:       class.StartTime,
		EnrolledUserIDs: enrolled,
		IsAvailable:     class.IsAvailable,
		CreatedAt:       class.CreatedAt,
	}
}

// Create handles the class creation request.
func (h *ClassHandler) Create(c echo.Context) error {
	var input createClassRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid class payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	instructorID, err := uuid.Parse(input.InstructorID)
	if err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid instructor id")
	}

	class, err := h.uc.Create(c.Request().Context(), usecase.CreateClassInput{
		Title:           input.Title,
		Description:     input.Description,
		InstructorID:    instructorID,
		DurationMinutes: input.DurationMinutes,
		Type:            input.Type,
		Category:        input.Category,
		Difficulty:      input.Difficulty,
		Capacity:        input.Capacity,
		Price:           input.Price,
		VideoURL:        input.VideoURL,
		StartTime:       input.StartTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toClassResponse(class))
}

// List returns every class in the catalog.
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*classResponse, 0, len(classes))
	for _, class := range classes {
		items = append(items, toClassResponse(class))
	}

	return response.List(c, http.StatusOK, len(items), items)
}

// Get returns a single class.
func (h *ClassHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	class, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClassResponse(class))
}

// Update modifies a class.
func (h *ClassHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input updateClassRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid update payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	class, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateClassInput{
		Title:           input.Title,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Category:        input.Category,
		Difficulty:      input.Difficulty,
		Capacity:        input.Capacity,
		Price:           input.Price,
		VideoURL:        input.VideoURL,
		StartTime:       input.StartTime,
		IsAvailable:     input.IsAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClassResponse(class))
}

// Delete removes a class from the catalog.
func (h *ClassHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"message": "Class deleted"})
}

// Enroll reserves a seat in the class for the authenticated user.
func (h *ClassHandler) Enroll(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Not authorized, user not found")
	}

	class, err := h.uc.Enroll(c.Request().Context(), id, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClassResponse(class))
}
