// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInstructorNotFound is returned when an instructor profile is not found.
var ErrInstructorNotFound = errors.New("instructor not found")

// InstructorRepository defines the standard operations for instructor persistence.
type InstructorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error)
	List(ctx context.Context) ([]*entity.Instructor, error)
	Create(ctx context.Context, instructor *entity.Instructor) error
	Update(ctx context.Context, instructor *entity.Instructor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
