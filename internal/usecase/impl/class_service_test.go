package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

func newClassServiceForTest(t *testing.T) (
	usecase.ClassUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockClassRepository,
	*mockRepo.MockInstructorRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	classRepo := mockRepo.NewMockClassRepository(t)
	instructorRepo := mockRepo.NewMockInstructorRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewClassService(txManager, classRepo, instructorRepo, logger)

	return service, txManager, classRepo, instructorRepo
}

func TestClassService_Create_LiveClass(t *testing.T) {
	service, _, classRepo, instructorRepo := newClassServiceForTest(t)

	ctx := context.Background()
	instructorID := uuid.New()
	startTime := time.Now().Add(48 * time.Hour)

	instructorRepo.EXPECT().FindByID(ctx, instructorID).Return(&entity.Instructor{ID: instructorID}, nil)
	classRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Class")).
		Run(func(ctx context.Context, class *entity.Class) {
			assert.Equal(t, entity.ClassTypeLive, class.Type)
			assert.True(t, class.IsAvailable)
			assert.NotNil(t, class.EnrolledUserIDs)
			assert.Empty(t, class.EnrolledUserIDs)
		}).
		Return(nil)

	class, err := service.Create(ctx, usecase.CreateClassInput{
		Title:           "Morning Yoga",
		InstructorID:    instructorID,
		DurationMinutes: 60,
		Type:            "live",
		Category:        "yoga",
		Difficulty:      "beginner",
		Capacity:        20,
		Price:           12.50,
		StartTime:       &startTime,
	})

	require.NoError(t, err)
	assert.True(t, class.IsAvailable)
}

func TestClassService_Create_LiveClassRequiresStartTime(t *testing.T) {
	service, _, _, _ := newClassServiceForTest(t)

	ctx := context.Background()

	class, err := service.Create(ctx, usecase.CreateClassInput{
		Title:        "Morning Yoga",
		InstructorID: uuid.New(),
		Type:         "live",
		Capacity:     20,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, class)
}

func TestClassService_Create_RecordedClassRequiresVideoURL(t *testing.T) {
	service, _, _, _ := newClassServiceForTest(t)

	ctx := context.Background()

	class, err := service.Create(ctx, usecase.CreateClassInput{
		Title:        "HIIT On Demand",
		InstructorID: uuid.New(),
		Type:         "recorded",
		Capacity:     100,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, class)
}

func TestClassService_Create_InvalidType(t *testing.T) {
	service, _, _, _ := newClassServiceForTest(t)

	ctx := context.Background()

	class, err := service.Create(ctx, usecase.CreateClassInput{
		Title:        "Mystery Class",
		InstructorID: uuid.New(),
		Type:         "hybrid",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, class)
}

func TestClassService_Create_UnknownInstructor(t *testing.T) {
	service, _, _, instructorRepo := newClassServiceForTest(t)

	ctx := context.Background()
	instructorID := uuid.New()

	instructorRepo.EXPECT().FindByID(ctx, instructorID).Return(nil, repository.ErrInstructorNotFound)

	class, err := service.Create(ctx, usecase.CreateClassInput{
		Title:        "HIIT On Demand",
		InstructorID: instructorID,
		Type:         "recorded",
		VideoURL:     "https://cdn.example.com/hiit.mp4",
	})

	require.ErrorIs(t, err, domainerrors.ErrInstructorNotFound)
	assert.Nil(t, class)
}

func enrollExpectations(t *testing.T, ctx context.Context, txManager *mockRepo.MockTransactionManager, user *entity.User, class *entity.Class, classErr error, expectUpdate bool) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockClassRepo := mockRepo.NewMockClassRepository(t)

			mockFactory.EXPECT().ClassRepo().Return(mockClassRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockClassRepo.EXPECT().FindByID(ctx, mock.AnythingOfType("uuid.UUID")).Return(class, classErr)
			if expectUpdate {
				mockClassRepo.EXPECT().Update(ctx, class).Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestClassService_Enroll_Success(t *testing.T) {
	service, txManager, _, _ := newClassServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	class := &entity.Class{
		ID:              uuid.New(),
		Capacity:        2,
		EnrolledUserIDs: []uuid.UUID{uuid.New()},
		IsAvailable:     true,
	}

	enrollExpectations(t, ctx, txManager, user, class, nil, true)

	enrolled, err := service.Enroll(ctx, class.ID, userID)

	require.NoError(t, err)
	assert.True(t, enrolled.IsEnrolled(userID))
	assert.Len(t, enrolled.EnrolledUserIDs, 2)
}

func TestClassService_Enroll_ClassFull(t *testing.T) {
	service, txManager, _, _ := newClassServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	class := &entity.Class{
		ID:              uuid.New(),
		Capacity:        1,
		EnrolledUserIDs: []uuid.UUID{uuid.New()},
		IsAvailable:     true,
	}

	enrollExpectations(t, ctx, txManager, user, class, nil, false)

	enrolled, err := service.Enroll(ctx, class.ID, userID)

	require.ErrorIs(t, err, domainerrors.ErrClassFull)
	assert.Nil(t, enrolled)
}

func TestClassService_Enroll_AlreadyEnrolled(t *testing.T) {
	service, txManager, _, _ := newClassServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	class := &entity.Class{
		ID:              uuid.New(),
		Capacity:        10,
		EnrolledUserIDs: []uuid.UUID{userID},
		IsAvailable:     true,
	}

	enrollExpectations(t, ctx, txManager, user, class, nil, false)

	enrolled, err := service.Enroll(ctx, class.ID, userID)

	require.ErrorIs(t, err, domainerrors.ErrAlreadyEnrolled)
	assert.Nil(t, enrolled)
}

func TestClassService_Enroll_ClassUnavailable(t *testing.T) {
	service, txManager, _, _ := newClassServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	class := &entity.Class{
		ID:              uuid.New(),
		Capacity:        10,
		EnrolledUserIDs: []uuid.UUID{},
		IsAvailable:     false,
	}

	enrollExpectations(t, ctx, txManager, user, class, nil, false)

	enrolled, err := service.Enroll(ctx, class.ID, userID)

	require.ErrorIs(t, err, domainerrors.ErrClassUnavailable)
	assert.Nil(t, enrolled)
}

func TestClassService_Enroll_ClassNotFound(t *testing.T) {
	service, txManager, _, _ := newClassServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	enrollExpectations(t, ctx, txManager, user, nil, repository.ErrClassNotFound, false)

	enrolled, err := service.Enroll(ctx, uuid.New(), userID)

	require.ErrorIs(t, err, domainerrors.ErrClassNotFound)
	assert.Nil(t, enrolled)
}

func TestClassService_Update_TogglesAvailability(t *testing.T) {
	service, _, classRepo, _ := newClassServiceForTest(t)

	ctx := context.Background()
	classID := uuid.New()
	class := &entity.Class{ID: classID, Title: "Morning Yoga", IsAvailable: true}
	unavailable := false

	classRepo.EXPECT().FindByID(ctx, classID).Return(class, nil)
	classRepo.EXPECT().Update(ctx, class).Return(nil)

	updated, err := service.Update(ctx, classID, usecase.UpdateClassInput{IsAvailable: &unavailable})

	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestClassService_Delete_NotFound(t *testing.T) {
	service, _, classRepo, _ := newClassServiceForTest(t)

	ctx := context.Background()
	classID := uuid.New()

	classRepo.EXPECT().Delete(ctx, classID).Return(repository.ErrClassNotFound)

	err := service.Delete(ctx, classID)

	require.ErrorIs(t, err, domainerrors.ErrClassNotFound)
}
