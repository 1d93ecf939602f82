// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"fitmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned whenever a refresh token cannot be used:
// missing, revoked or expired. The lookup deliberately does not distinguish
// the three cases so callers cannot leak token existence.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the persistence contract for refresh-token
// sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindValidByToken retrieves the record for an opaque token value, but only
	// when it exists, is not revoked and has not expired. Every other outcome
	// is ErrRefreshTokenNotFound.
	FindValidByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Revoke marks the record as revoked and persists it. Revoking an already
	// revoked record is a no-op.
	Revoke(ctx context.Context, token *entity.RefreshToken) error

	// DeleteByUserID removes all refresh tokens for a user, ending every
	// session. Used when the account itself is deleted.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteCreatedBefore removes all records created before the cutoff,
	// regardless of expiry or revocation state. Retention cleanup only; it
	// never affects whether a token validates.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
