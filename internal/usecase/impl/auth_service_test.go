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
	mockService "fitmarket/internal/mocks/service"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockRefreshTokenRepository,
	*mockService.MockTokenService,
	*mockService.MockPasswordHasher,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenSvc := mockService.NewMockTokenService(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(userRepo, refreshRepo, tokenSvc, hasher, logger)

	return service, userRepo, refreshRepo, tokenSvc, hasher
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, refreshRepo, tokenSvc, hasher := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jane@example.com", PasswordHash: "$2a$10$hash"}

	userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret123", "$2a$10$hash").Return(true)
	tokenSvc.EXPECT().GenerateAccessToken(userID).Return("access-token", nil)
	tokenSvc.EXPECT().NewRefreshTokenValue().Return("refresh-value", nil)
	tokenSvc.EXPECT().RefreshTokenDuration().Return(720 * time.Hour)
	refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-value", token.Token)
			assert.Equal(t, "test-agent", token.UserAgent)
			assert.Equal(t, "203.0.113.7", token.IP)
			assert.WithinDuration(t, time.Now().Add(720*time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	gotUser, pair, err := service.Login(ctx, usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "secret123",
		Client:   usecase.ClientInfo{UserAgent: "test-agent", IP: "203.0.113.7"},
	})

	require.NoError(t, err)
	assert.Equal(t, user, gotUser)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-value", pair.RefreshToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _, _, hasher := newAuthServiceForTest(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	// The hash comparison still runs so an unknown email takes as long as a
	// wrong password.
	hasher.EXPECT().Check("whatever", "").Return(false)

	user, pair, err := service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Nil(t, pair)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, _, _, hasher := newAuthServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "$2a$10$hash"}

	userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	_, _, err := service.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})

	// Same error value as the unknown email case, so responses are identical.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	service, userRepo, refreshRepo, tokenSvc, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	current := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     "old-value",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	var order []string

	refreshRepo.EXPECT().FindValidByToken(ctx, "old-value").Return(current, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	tokenSvc.EXPECT().GenerateAccessToken(userID).Return("new-access", nil)
	tokenSvc.EXPECT().NewRefreshTokenValue().Return("new-value", nil)
	tokenSvc.EXPECT().RefreshTokenDuration().Return(720 * time.Hour)
	refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			order = append(order, "create")
			assert.Equal(t, "new-value", token.Token)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)
	refreshRepo.EXPECT().
		Revoke(ctx, current).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			order = append(order, "revoke")
		}).
		Return(nil)

	pair, err := service.Refresh(ctx, "old-value", usecase.ClientInfo{})

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-value", pair.RefreshToken)
	// The replacement is persisted before the presented token is revoked.
	assert.Equal(t, []string{"create", "revoke"}, order)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	service, _, refreshRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	refreshRepo.EXPECT().FindValidByToken(ctx, "bogus").Return(nil, repository.ErrRefreshTokenNotFound)

	pair, err := service.Refresh(ctx, "bogus", usecase.ClientInfo{})

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, pair)
}

func TestAuthService_Refresh_OwnerDeleted(t *testing.T) {
	service, userRepo, refreshRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	current := &entity.RefreshToken{ID: uuid.New(), UserID: userID, Token: "old-value"}

	refreshRepo.EXPECT().FindValidByToken(ctx, "old-value").Return(current, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	pair, err := service.Refresh(ctx, "old-value", usecase.ClientInfo{})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, pair)
}

func TestAuthService_Refresh_DefaultsUserAgent(t *testing.T) {
	service, userRepo, refreshRepo, tokenSvc, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	current := &entity.RefreshToken{ID: uuid.New(), UserID: userID, Token: "old-value"}

	refreshRepo.EXPECT().FindValidByToken(ctx, "old-value").Return(current, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	tokenSvc.EXPECT().GenerateAccessToken(userID).Return("new-access", nil)
	tokenSvc.EXPECT().NewRefreshTokenValue().Return("new-value", nil)
	tokenSvc.EXPECT().RefreshTokenDuration().Return(720 * time.Hour)
	refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, entity.UnknownUserAgent, token.UserAgent)
		}).
		Return(nil)
	refreshRepo.EXPECT().Revoke(ctx, current).Return(nil)

	_, err := service.Refresh(ctx, "old-value", usecase.ClientInfo{})

	require.NoError(t, err)
}

func TestAuthService_Logout_Success(t *testing.T) {
	service, _, refreshRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	current := &entity.RefreshToken{ID: uuid.New(), UserID: uuid.New(), Token: "value"}

	refreshRepo.EXPECT().FindValidByToken(ctx, "value").Return(current, nil)
	refreshRepo.EXPECT().Revoke(ctx, current).Return(nil)

	err := service.Logout(ctx, "value")

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	service, _, refreshRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	refreshRepo.EXPECT().FindValidByToken(ctx, "gone").Return(nil, repository.ErrRefreshTokenNotFound)

	err := service.Logout(ctx, "gone")

	require.NoError(t, err)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	service, userRepo, _, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Jane"}

	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := service.CurrentUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	service, userRepo, _, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := service.CurrentUser(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, got)
}
