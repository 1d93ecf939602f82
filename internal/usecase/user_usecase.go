package usecase

import (
	"context"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput is the DTO for creating a user account.
type RegisterUserInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	FitnessGoals string
}

// UpdateUserInput is the DTO for updating a user account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Name         *string
	Email        *string
	Password     *string
	FitnessGoals *string
}

// UserUsecase defines the interface for user account operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	// Delete removes the account and every session attached to it.
	Delete(ctx context.Context, id uuid.UUID) error
}
