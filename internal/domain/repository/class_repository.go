// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClassNotFound is returned when a class is not found.
var ErrClassNotFound = errors.New("class not found")

// ClassRepository defines the standard operations for class persistence.
type ClassRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	List(ctx context.Context) ([]*entity.Class, error)
	Create(ctx context.Context, class *entity.Class) error
	Update(ctx context.Context, class *entity.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}
