package usecase

import (
	"context"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInstructorInput is the DTO for creating an instructor profile.
type CreateInstructorInput struct {
	UserID          uuid.UUID
	Biography       string
	Specialties     []string
	ExperienceYears int
}

// UpdateInstructorInput is the DTO for updating an instructor profile.
// Nil fields are left unchanged.
type UpdateInstructorInput struct {
	Biography       *string
	Specialties     []string
	ExperienceYears *int
	IsVerified      *bool
}

// InstructorUsecase defines the interface for instructor profile operations.
type InstructorUsecase interface {
	Create(ctx context.Context, input CreateInstructorInput) (*entity.Instructor, error)
	List(ctx context.Context) ([]*entity.Instructor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInstructorInput) (*entity.Instructor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
