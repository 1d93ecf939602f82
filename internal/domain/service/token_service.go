package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Token validation failure modes. The authorization middleware distinguishes
// the two so clients know whether to refresh or re-authenticate.
var (
	// ErrTokenExpired means the token was well-formed and correctly signed but
	// its embedded expiry has passed.
	ErrTokenExpired = errors.New("access token expired")
	// ErrTokenInvalid means the signature did not verify or the payload was malformed.
	ErrTokenInvalid = errors.New("access token invalid")
)

// AccessClaims carries the verified identity assertion of an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for minting and verifying session
// credentials. Access tokens are stateless signed assertions; refresh token
// values are opaque random strings whose validity lives in the ledger.
type TokenService interface {
	// GenerateAccessToken creates a short-lived signed token with the user id as subject.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken checks signature and expiry, returning the embedded
	// claims. Fails with ErrTokenExpired or ErrTokenInvalid.
	ValidateAccessToken(token string) (*AccessClaims, error)

	// NewRefreshTokenValue returns a cryptographically random, hex-encoded
	// opaque value for a new refresh token.
	NewRefreshTokenValue() (string, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
