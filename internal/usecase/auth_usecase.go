// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ClientInfo carries request metadata recorded against a session.
type ClientInfo struct {
	UserAgent string
	IP        string
}

// LoginInput is the DTO for the login operation.
type LoginInput struct {
	Email    string
	Password string
	Client   ClientInfo
}

// TokenPair is the credential pair returned by login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication and session operations.
type AuthUsecase interface {
	// Login verifies credentials and establishes a new session.
	Login(ctx context.Context, input LoginInput) (*entity.User, *TokenPair, error)

	// Refresh rotates a refresh token: the presented token is consumed and a
	// new pair is issued.
	Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*TokenPair, error)

	// Logout revokes the presented refresh token. Unknown tokens succeed silently.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser returns the profile of the authenticated user.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
