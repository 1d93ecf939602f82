package usecase

import (
	"context"
	"time"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateClassInput is the DTO for creating a class.
type CreateClassInput struct {
	Title           string
	Description     string
	InstructorID    uuid.UUID
	DurationMinutes int
	Type            string
	Category        string
	Difficulty      string
	Capacity        int
	Price           float64
	VideoURL        string
	StartTime       *time.Time
}

// UpdateClassInput is the DTO for updating a class.
// Nil fields are left unchanged.
type UpdateClassInput struct {
	Title           *string
	Description     *string
	DurationMinutes *int
	Category        *string
	Difficulty      *string
	Capacity        *int
	Price           *float64
	VideoURL        *string
	StartTime       *time.Time
	IsAvailable     *bool
}

// ClassUsecase defines the interface for class catalog operations.
type ClassUsecase interface {
	Create(ctx context.Context, input CreateClassInput) (*entity.Class, error)
	List(ctx context.Context) ([]*entity.Class, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateClassInput) (*entity.Class, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Enroll reserves a seat in the class for the user. Fails when the class
	// is full, unavailable or the user is already enrolled.
	Enroll(ctx context.Context, classID, userID uuid.UUID) (*entity.Class, error)
}
