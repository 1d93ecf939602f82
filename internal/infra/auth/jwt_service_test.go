package auth

import (
	"testing"
	"time"

	"fitmarket/config"
	"fitmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(accessTTL, refreshTTL time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: refreshTTL,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0, 0))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(jwtService.AccessTokenDuration()), claims.ExpiresAt, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0, 0))
	assert.NoError(t, err)

	// Using clearly non-JWT format
	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0, 0))
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	// A token signed with a different secret must not validate.
	otherCfg := testConfig(0, 0)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	otherToken, err := otherService.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(otherToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)

	// Sanity check that the original still validates.
	_, err = jwtService.ValidateAccessToken(token)
	assert.NoError(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(-time.Minute, 0))
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	// Expiry must surface as ErrTokenExpired, not ErrTokenInvalid.
	claims, err := jwtService.ValidateAccessToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig(0, 0)
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}

func TestJWTService_TokenDurations(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0, 0))
	assert.NoError(t, err)

	assert.Equal(t, time.Minute*15, jwtService.AccessTokenDuration())
	assert.Equal(t, time.Hour*24*30, jwtService.RefreshTokenDuration())

	custom, err := NewJWTService(testConfig(time.Minute*5, time.Hour*24*14))
	assert.NoError(t, err)
	assert.Equal(t, time.Minute*5, custom.AccessTokenDuration())
	assert.Equal(t, time.Hour*24*14, custom.RefreshTokenDuration())
}

func TestJWTService_NewRefreshTokenValue(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(0, 0))
	assert.NoError(t, err)

	first, err := jwtService.NewRefreshTokenValue()
	assert.NoError(t, err)
	assert.Len(t, first, refreshTokenBytes*2) // hex doubles the length

	second, err := jwtService.NewRefreshTokenValue()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
