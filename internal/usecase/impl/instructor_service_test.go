package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/domain/repository"
	mockRepo "fitmarket/internal/mocks/repository"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInstructorServiceForTest(t *testing.T) (
	usecase.InstructorUsecase,
	*mockRepo.MockInstructorRepository,
	*mockRepo.MockUserRepository,
) {
	instructorRepo := mockRepo.NewMockInstructorRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInstructorService(instructorRepo, userRepo, logger)

	return service, instructorRepo, userRepo
}

func TestInstructorService_Create_Success(t *testing.T) {
	service, instructorRepo, userRepo := newInstructorServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleInstructor}, nil)
	instructorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Instructor")).
		Run(func(ctx context.Context, instructor *entity.Instructor) {
			assert.Equal(t, userID, instructor.UserID)
			assert.Equal(t, []string{"yoga", "pilates"}, instructor.Specialties)
		}).
		Return(nil)

	instructor, err := service.Create(ctx, usecase.CreateInstructorInput{
		UserID:          userID,
		Biography:       "Certified yoga teacher",
		Specialties:     []string{"yoga", "pilates"},
		ExperienceYears: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, instructor.UserID)
}

func TestInstructorService_Create_UnknownUser(t *testing.T) {
	service, _, userRepo := newInstructorServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	instructor, err := service.Create(ctx, usecase.CreateInstructorInput{UserID: userID})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, instructor)
}

func TestInstructorService_Update_PartialFields(t *testing.T) {
	service, instructorRepo, _ := newInstructorServiceForTest(t)

	ctx := context.Background()
	instructorID := uuid.New()
	existing := &entity.Instructor{
		ID:              instructorID,
		Biography:       "Old bio",
		Specialties:     []string{"yoga"},
		ExperienceYears: 3,
	}
	newBio := "Updated bio"

	instructorRepo.EXPECT().FindByID(ctx, instructorID).Return(existing, nil)
	instructorRepo.EXPECT().Update(ctx, existing).Return(nil)

	updated, err := service.Update(ctx, instructorID, usecase.UpdateInstructorInput{Biography: &newBio})

	require.NoError(t, err)
	assert.Equal(t, "Updated bio", updated.Biography)
	// Untouched fields keep their values.
	assert.Equal(t, []string{"yoga"}, updated.Specialties)
	assert.Equal(t, 3, updated.ExperienceYears)
}

func TestInstructorService_GetByID_NotFound(t *testing.T) {
	service, instructorRepo, _ := newInstructorServiceForTest(t)

	ctx := context.Background()
	instructorID := uuid.New()

	instructorRepo.EXPECT().FindByID(ctx, instructorID).Return(nil, repository.ErrInstructorNotFound)

	instructor, err := service.GetByID(ctx, instructorID)

	require.ErrorIs(t, err, domainerrors.ErrInstructorNotFound)
	assert.Nil(t, instructor)
}
