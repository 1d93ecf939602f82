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
	mockService "fitmarket/internal/mocks/service"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockUserRepository,
	*mockService.MockPasswordHasher,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(txManager, userRepo, hasher, logger)

	return service, txManager, userRepo, hasher
}

func TestUserService_Register_Success(t *testing.T) {
	service, _, userRepo, hasher := newUserServiceForTest(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Jane", user.Name)
			assert.Equal(t, "jane@example.com", user.Email)
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			assert.Equal(t, entity.RoleInstructor, user.Role)
		}).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     "instructor",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleInstructor, user.Role)
}

func TestUserService_Register_DefaultsToUserRole(t *testing.T) {
	service, _, userRepo, hasher := newUserServiceForTest(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleUser, user.Role)
		}).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	service, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()

	user, err := service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     "superadmin",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, user)
}

func TestUserService_Register_EmailConflict(t *testing.T) {
	service, _, userRepo, hasher := newUserServiceForTest(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailAlreadyExists)

	user, err := service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	assert.Nil(t, user)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	service, _, userRepo, hasher := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Name: "Jane", Email: "jane@example.com", PasswordHash: "$2a$10$old"}
	newPassword := "newsecret"

	userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	hasher.EXPECT().Hash(newPassword).Return("$2a$10$new", nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "$2a$10$new", user.PasswordHash)
		}).
		Return(nil)

	user, err := service.Update(ctx, userID, usecase.UpdateUserInput{Password: &newPassword})

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", user.PasswordHash)
}

func TestUserService_Update_NotFound(t *testing.T) {
	service, _, userRepo, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	name := "New Name"

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := service.Update(ctx, userID, usecase.UpdateUserInput{Name: &name})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_Delete_RemovesSessionsInSameTransaction(t *testing.T) {
	service, txManager, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)
			mockRefreshRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	err := service.Delete(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_Delete_UserNotFound(t *testing.T) {
	service, txManager, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRepo.NewMockRefreshTokenRepository(t))

			mockUserRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := service.Delete(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
