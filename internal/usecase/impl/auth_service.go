// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitmarket/internal/delivery/context"
	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	"fitmarket/internal/domain/repository"
	"fitmarket/internal/domain/service"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo    repository.UserRepository
	refreshRepo repository.RefreshTokenRepository
	tokenSvc    service.TokenService
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	refreshRepo repository.RefreshTokenRepository,
	tokenSvc service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		tokenSvc:    tokenSvc,
		hasher:      hasher,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and establishes a new session. An unknown email
// and a wrong password both return ErrInvalidCredentials, and the bcrypt check
// runs in both cases, so the two are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, *usecase.TokenPair, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash comparison anyway so timing does not reveal
			// whether the email exists.
			srv.hasher.Check(input.Password, "")

			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.issueTokenPair(ctx, user.ID, input.Client)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token pair", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return user, pair, nil
}

// Refresh rotates the presented refresh token. The new pair is issued first
// and the presented token revoked after; two concurrent refreshes of the same
// token may therefore both succeed. Revocation of the losing branch happens
// when the stale value is presented again and rejected.
func (srv *authService) Refresh(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
	current, err := srv.refreshRepo.FindValidByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	// The owner may have been deleted after the token was issued.
	if _, err := srv.userRepo.FindByID(ctx, current.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	pair, err := srv.issueTokenPair(ctx, current.UserID, client)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token pair", slog.Any("error", err), slog.Any("user_id", current.UserID))

		return nil, err
	}

	if err := srv.refreshRepo.Revoke(ctx, current); err != nil {
		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("Refresh token rotated", slog.Any("user_id", current.UserID))

	return pair, nil
}

// Logout revokes the presented refresh token. A token that is unknown, already
// revoked or expired is treated as already logged out, so the operation is
// idempotent and never leaks token state.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	current, err := srv.refreshRepo.FindValidByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshRepo.Revoke(ctx, current); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", current.UserID))

	return nil
}

// CurrentUser returns the profile of the authenticated user.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// issueTokenPair mints an access token and persists a fresh refresh token row.
func (srv *authService) issueTokenPair(ctx context.Context, userID uuid.UUID, client usecase.ClientInfo) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenSvc.GenerateAccessToken(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshValue, err := srv.tokenSvc.NewRefreshTokenValue()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token value")
	}

	userAgent := client.UserAgent
	if userAgent == "" {
		userAgent = entity.UnknownUserAgent
	}

	token := &entity.RefreshToken{
		UserID:    userID,
		Token:     refreshValue,
		UserAgent: userAgent,
		IP:        client.IP,
		ExpiresAt: time.Now().Add(srv.tokenSvc.RefreshTokenDuration()),
	}
	if err := srv.refreshRepo.Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
	}, nil
}
