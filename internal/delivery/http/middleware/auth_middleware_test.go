package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitmarket/internal/domain/entity"
	"fitmarket/internal/domain/repository"
	"fitmarket/internal/domain/service"
	mockRepo "fitmarket/internal/mocks/repository"
	mockService "fitmarket/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService, *mockRepo.MockUserRepository) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewAuthMiddleware(tokenSvc, userRepo), tokenSvc, userRepo
}

func runAuthenticate(m *AuthMiddleware, authHeader string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m.Authenticate(handler)(c)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _, _ := setupAuthTest(t)

	rec := runAuthenticate(m, "", func(c echo.Context) error { return nil })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not authorized, no token", body["error"])
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	m, _, _ := setupAuthTest(t)

	rec := runAuthenticate(m, "Basic dXNlcjpwYXNz", func(c echo.Context) error { return nil })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Not authorized, no token", body["error"])
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m, tokenSvc, _ := setupAuthTest(t)

	tokenSvc.EXPECT().ValidateAccessToken("expired-token").Return(nil, service.ErrTokenExpired)

	rec := runAuthenticate(m, "Bearer expired-token", func(c echo.Context) error { return nil })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Token expired, please refresh token", body["error"])
	// The flag tells clients to try the refresh flow instead of a new login.
	assert.Equal(t, true, body["isExpired"])
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m, tokenSvc, _ := setupAuthTest(t)

	tokenSvc.EXPECT().ValidateAccessToken("garbage").Return(nil, service.ErrTokenInvalid)

	rec := runAuthenticate(m, "Bearer garbage", func(c echo.Context) error { return nil })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Not authorized, token failed", body["error"])
	_, hasExpiredFlag := body["isExpired"]
	assert.False(t, hasExpiredFlag)
}

func TestAuthenticate_UserDeleted(t *testing.T) {
	m, tokenSvc, userRepo := setupAuthTest(t)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("valid-token").Return(&service.AccessClaims{UserID: userID}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	rec := runAuthenticate(m, "Bearer valid-token", func(c echo.Context) error { return nil })

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Not authorized, user not found", body["error"])
}

func TestAuthenticate_Success(t *testing.T) {
	m, tokenSvc, userRepo := setupAuthTest(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleUser}
	tokenSvc.EXPECT().ValidateAccessToken("valid-token").Return(&service.AccessClaims{UserID: userID}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	var handlerCalled bool
	rec := runAuthenticate(m, "Bearer valid-token", func(c echo.Context) error {
		handlerCalled = true
		gotUser, ok := CurrentUser(c)
		assert.True(t, ok)
		assert.Equal(t, user, gotUser)
		assert.Equal(t, userID, c.Get(ContextKeyUserID))

		return c.NoContent(http.StatusOK)
	})

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func runRequireRoles(m *AuthMiddleware, user *entity.User, allowed ...entity.Role) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(ContextKeyUser, user)
	}

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	_ = m.RequireRoles(allowed...)(handler)(c)

	return rec
}

func TestRequireRoles_Allowed(t *testing.T) {
	m, _, _ := setupAuthTest(t)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	rec := runRequireRoles(m, user, entity.RoleInstructor, entity.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	m, _, _ := setupAuthTest(t)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	rec := runRequireRoles(m, user, entity.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User role user is not authorized to access this route", body["error"])
}

func TestRequireRoles_MissingUser(t *testing.T) {
	m, _, _ := setupAuthTest(t)

	rec := runRequireRoles(m, nil, entity.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Not authorized, user not found", body["error"])
}
