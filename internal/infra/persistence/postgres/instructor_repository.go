// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/domain/repository"
	"fitmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// instructorRepository implements the domain.InstructorRepository interface.
type instructorRepository struct {
	db *gorm.DB
}

// NewInstructorRepository is the constructor for instructorRepository.
func NewInstructorRepository(db *gorm.DB) repository.InstructorRepository {
	return &instructorRepository{db: db}
}

// FindByID retrieves a single instructor profile by its unique ID.
func (repo *instructorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error) {
	var instructorM model.InstructorModel
	if err := repo.db.WithContext(ctx).First(&instructorM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstructorNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toInstructorDomain(&instructorM), nil
}

// List retrieves all instructor profiles ordered by creation time.
func (repo *instructorRepository) List(ctx context.Context) ([]*entity.Instructor, error) {
	var instructorModels []*model.InstructorModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&instructorModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	instructors := make([]*entity.Instructor, 0, len(instructorModels))
	for _, instructorM := range instructorModels {
		instructors = append(instructors, toInstructorDomain(instructorM))
	}

	return instructors, nil
}

// Create persists a new instructor profile.
func (repo *instructorRepository) Create(ctx context.Context, instructor *entity.Instructor) error {
	instructorM := fromInstructorDomain(instructor)

	if err := repo.db.WithContext(ctx).Create(instructorM).Error; err != nil {
		// One profile per user.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("instructor profile already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create instructor")
	}

	instructor.ID = instructorM.ID
	instructor.CreatedAt = instructorM.CreatedAt

	return nil
}

// Update modifies an existing instructor profile.
func (repo *instructorRepository) Update(ctx context.Context, instructor *entity.Instructor) error {
	instructorM := fromInstructorDomain(instructor)

	// Struct-based update keeps the JSON serializer on specialties working;
	// Select forces zero values through.
	result := repo.db.WithContext(ctx).Model(&model.InstructorModel{}).
		Where("id = ?", instructorM.ID).
		Select("biography", "specialties", "experience_years", "average_rating", "total_reviews", "is_verified").
		Updates(instructorM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update instructor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInstructorNotFound
	}

	return nil
}

// Delete removes an instructor profile by ID.
func (repo *instructorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.InstructorModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrInstructorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toInstructorDomain converts a GORM InstructorModel to a domain Instructor entity.
func toInstructorDomain(data *model.InstructorModel) *entity.Instructor {
	if data == nil {
		return nil
	}

	return &entity.Instructor{
		ID:              data.ID,
		UserID:          data.UserID,
		Biography:       data.Biography,
		Specialties:     data.Specialties,
		ExperienceYears: data.ExperienceYears,
		AverageRating:   data.AverageRating,
		TotalReviews:    data.TotalReviews,
		IsVerified:      data.IsVerified,
		CreatedAt:       data.CreatedAt,
	}
}

// fromInstructorDomain converts a domain Instructor entity to a GORM InstructorModel.
func fromInstructorDomain(data *entity.Instructor) *model.InstructorModel {
	if data == nil {
		return nil
	}

	return &model.InstructorModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Biography:       data.Biography,
		Specialties:     data.Specialties,
		ExperienceYears: data.ExperienceYears,
		AverageRating:   data.AverageRating,
		TotalReviews:    data.TotalReviews,
		IsVerified:      data.IsVerified,
		CreatedAt:       data.CreatedAt,
	}
}
