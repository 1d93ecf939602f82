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

// instructorService implements the InstructorUsecase interface.
type instructorService struct {
	instructorRepo repository.InstructorRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// NewInstructorService is the constructor for instructorService.
func NewInstructorService(
	instructorRepo repository.InstructorRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.InstructorUsecase {
	return &instructorService{
		instructorRepo: instructorRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *instructorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds an instructor profile for an existing user.
func (srv *instructorService) Create(ctx context.Context, input usecase.CreateInstructorInput) (*entity.Instructor, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	instructor := &entity.Instructor{
		UserID:          input.UserID,
		Biography:       input.Biography,
		Specialties:     input.Specialties,
		ExperienceYears: input.ExperienceYears,
	}

	if err := srv.instructorRepo.Create(ctx, instructor); err != nil {
		return nil, errors.Wrap(err, "failed to create instructor")
	}

	srv.log(ctx).Info("Instructor profile created", slog.Any("instructor_id", instructor.ID), slog.Any("user_id", input.UserID))

	return instructor, nil
}

// List retrieves all instructor profiles.
func (srv *instructorService) List(ctx context.Context) ([]*entity.Instructor, error) {
	instructors, err := srv.instructorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list instructors")
	}

	return instructors, nil
}

// GetByID retrieves a single instructor profile.
func (srv *instructorService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error) {
	instructor, err := srv.instructorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInstructorNotFound) {
			return nil, domainerrors.ErrInstructorNotFound
		}

		return nil, errors.Wrap(err, "failed to find instructor")
	}

	return instructor, nil
}

// Update modifies an existing instructor profile.
func (srv *instructorService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateInstructorInput) (*entity.Instructor, error) {
	instructor, err := srv.instructorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInstructorNotFound) {
			return nil, domainerrors.ErrInstructorNotFound
		}

		return nil, errors.Wrap(err, "failed to find instructor")
	}

	if input.Biography != nil {
		instructor.Biography = *input.Biography
	}
	if input.Specialties != nil {
		instructor.Specialties = input.Specialties
	}
	if input.ExperienceYears != nil {
		instructor.ExperienceYears = *input.ExperienceYears
	}
	if input.IsVerified != nil {
		instructor.IsVerified = *input.IsVerified
	}

	if err := srv.instructorRepo.Update(ctx, instructor); err != nil {
		if errors.Is(err, repository.ErrInstructorNotFound) {
			return nil, domainerrors.ErrInstructorNotFound
		}

		return nil, errors.Wrap(err, "failed to update instructor")
	}

	srv.log(ctx).Info("Instructor profile updated", slog.Any("instructor_id", instructor.ID))

	return instructor, nil
}

// Delete removes an instructor profile.
func (srv *instructorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.instructorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInstructorNotFound) {
			return domainerrors.ErrInstructorNotFound
		}

		return errors.Wrap(err, "failed to delete instructor")
	}

	srv.log(ctx).Info("Instructor profile deleted", slog.Any("instructor_id", id))

	return nil
}
