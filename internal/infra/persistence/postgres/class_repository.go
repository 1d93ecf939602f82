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

// classRepository implements the domain.ClassRepository interface.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository is the constructor for classRepository.
func NewClassRepository(db *gorm.DB) repository.ClassRepository {
	return &classRepository{db: db}
}

// FindByID retrieves a single class by its unique ID.
func (repo *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	var classM model.ClassModel
	if err := repo.db.WithContext(ctx).First(&classM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toClassDomain(&classM), nil
}

// List retrieves all classes ordered by creation time.
func (repo *classRepository) List(ctx context.Context) ([]*entity.Class, error) {
	var classModels []*model.ClassModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&classModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	classes := make([]*entity.Class, 0, len(classModels))
	for _, classM := range classModels {
		classes = append(classes, toClassDomain(classM))
	}

	return classes, nil
}

// Create persists a new class.
func (repo *classRepository) Create(ctx context.Context, class *entity.Class) error {
	classM := fromClassDomain(class)

	if err := repo.db.WithContext(ctx).Create(classM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInstructorNotFound.WrapMessage("invalid instructor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create class")
	}

	class.ID = classM.ID
	class.CreatedAt = classM.CreatedAt

	return nil
}

// Update modifies an existing class, including its enrollment list.
func (repo *classRepository) Update(ctx context.Context, class *entity.Class) error {
	classM := fromClassDomain(class)

	// Struct-based update keeps the JSON serializer on enrolled_user_ids
	// working; Select forces zero values through.
	result := repo.db.WithContext(ctx).Model(&model.ClassModel{}).
		Where("id = ?", classM.ID).
		Select("title", "description", "duration_minutes", "type", "category",
			"difficulty", "capacity", "price", "video_url", "start_time",
			"enrolled_user_ids", "is_available").
		Updates(classM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update class")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// Delete removes a class by ID.
func (repo *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ClassModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toClassDomain converts a GORM ClassModel to a domain Class entity.
func toClassDomain(data *model.ClassModel) *entity.Class {
	if data == nil {
		return nil
	}

	return &entity.Class{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		InstructorID:    data.InstructorID,
		DurationMinutes: data.DurationMinutes,
		Type:            entity.ClassType(data.Type),
		Category:        data.Category,
		Difficulty:      data.Difficulty,
		Capacity:        data.Capacity,
		Price:           data.Price,
		VideoURL:        data.VideoURL,
		StartTime:       data.StartTime,
		EnrolledUserIDs: data.EnrolledUserIDs,
		IsAvailable:     data.IsAvailable,
		CreatedAt:       data.CreatedAt,
	}
}

// fromClassDomain converts a domain Class entity to a GORM ClassModel.
func fromClassDomain(data *entity.Class) *model.ClassModel {
	if data == nil {
		return nil
	}

	return &model.ClassModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		InstructorID:    data.InstructorID,
		DurationMinutes: data.DurationMinutes,
		Type:            data.Type.String(),
		Category:        data.Category,
		Difficulty:      data.Difficulty,
		Capacity:        data.Capacity,
		Price:           data.Price,
		VideoURL:        data.VideoURL,
		StartTime:       data.StartTime,
		EnrolledUserIDs: data.EnrolledUserIDs,
		IsAvailable:     data.IsAvailable,
		CreatedAt:       data.CreatedAt,
	}
}
