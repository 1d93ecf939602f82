package impl

import (
	"context"
	"log/slog"

	deliverycontext "fitmarket/internal/delivery/context"
	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/domain/repository"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// classService implements the ClassUsecase interface.
type classService struct {
	txManager      repository.TransactionManager
	classRepo      repository.ClassRepository
	instructorRepo repository.InstructorRepository
	logger         *slog.Logger
}

// NewClassService is the constructor for classService.
func NewClassService(
	txManager repository.TransactionManager,
	classRepo repository.ClassRepository,
	instructorRepo repository.InstructorRepository,
	logger *slog.Logger,
) usecase.ClassUsecase {
	return &classService{
		txManager:      txManager,
		classRepo:      classRepo,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *classService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new class to the catalog. Live classes must carry a start
// time, recorded classes a video URL.
func (srv *classService) Create(ctx context.Context, input usecase.CreateClassInput) (*entity.Class, error) {
	classType := entity.ClassType(input.Type)
	if !classType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid class type")
	}
	if classType == entity.ClassTypeLive && input.StartTime == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("live classes require a start time")
	}
	if classType == entity.ClassTypeRecorded && input.VideoURL == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("recorded classes require a video URL")
	}

	if _, err := srv.instructorRepo.FindByID(ctx, input.InstructorID); err != nil {
		if errors.Is(err, repository.ErrInstructorNotFound) {
			return nil, domainerrors.ErrInstructorNotFound
		}

		return nil, errors.Wrap(err, "failed to find instructor")
	}

	class := &entity.Class{
		Title:           input.Title,
		Description:     input.Description,
		InstructorID:    input.InstructorID,
		DurationMinutes: input.DurationMinutes,
		Type:            classType,
		Category:        input.Category,
		Difficulty:      input.Difficulty,
		Capacity:        input.Capacity,
		Price:           input.Price,
		VideoURL:        input.VideoURL,
		StartTime:       input.StartTime,
		EnrolledUserIDs: []uuid.UUID{},
		IsAvailable:     true,
	}

	if err := srv.classRepo.Create(ctx, class); err != nil {
		return nil, errors.Wrap(err, "failed to create class")
	}

	srv.log(ctx).Info("Class created", slog.Any("class_id", class.ID), slog.Any("instructor_id", class.InstructorID))

	return class, nil
}

// List retrieves all classes.
func (srv *classService) List(ctx context.Context) ([]*entity.Class, error) {
	classes, err := srv.classRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classes")
	}

	return classes, nil
}

// GetByID retrieves a single class.
func (srv *classService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	class, err := srv.classRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class")
	}

	return class, nil
}

// Update modifies an existing class.
func (srv *classService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateClassInput) (*entity.Class, error) {
	class, err := srv.classRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class")
	}

	if input.Title != nil {
		class.Title = *input.Title
	}
	if input.Description != nil {
		class.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		class.DurationMinutes = *input.DurationMinutes
	}
	if input.Category != nil {
		class.Category = *input.Category
	}
	if input.Difficulty != nil {
		class.Difficulty = *input.Difficulty
	}
	if input.Capacity != nil {
		class.Capacity = *input.Capacity
	}
	if input.Price != nil {
		class.Price = *input.Price
	}
	if input.VideoURL != nil {
		class.VideoURL = *input.VideoURL
	}
	if input.StartTime != nil {
		class.StartTime = input.StartTime
	}
	if input.IsAvailable != nil {
		class.IsAvailable = *input.IsAvailable
	}

	if err := srv.classRepo.Update(ctx, class); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to update class")
	}

	srv.log(ctx).Info("Class updated", slog.Any("class_id", class.ID))

	return class, nil
}

// Delete removes a class from the catalog.
func (srv *classService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.classRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return domainerrors.ErrClassNotFound
		}

		return errors.Wrap(err, "failed to delete class")
	}

	srv.log(ctx).Info("Class deleted", slog.Any("class_id", id))

	return nil
}

// Enroll reserves a seat for the user. The read-check-write runs inside a
// single transaction so concurrent enrollments cannot oversell the class.
func (srv *classService) Enroll(ctx context.Context, classID, userID uuid.UUID) (*entity.Class, error) {
	var enrolled *entity.Class

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		classRepo := repoFactory.ClassRepo()
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		class, err := classRepo.FindByID(ctx, classID)
		if err != nil {
			if errors.Is(err, repository.ErrClassNotFound) {
				return domainerrors.ErrClassNotFound
			}

			return errors.Wrap(err, "failed to find class")
		}

		if !class.IsAvailable {
			return domainerrors.ErrClassUnavailable
		}
		if class.IsEnrolled(userID) {
			return domainerrors.ErrAlreadyEnrolled
		}
		if class.IsFull() {
			return domainerrors.ErrClassFull
		}

		class.EnrolledUserIDs = append(class.EnrolledUserIDs, userID)
		if err := classRepo.Update(ctx, class); err != nil {
			return errors.Wrap(err, "failed to update class")
		}

		enrolled = class

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User enrolled in class", slog.Any("class_id", classID), slog.Any("user_id", userID))

	return enrolled, nil
}
