package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "fitmarket/internal/delivery/http/validator"
	"fitmarket/internal/domain/entity"
	domainerrors "fitmarket/internal/domain/errors"
	mockUsecase "fitmarket/internal/mocks/usecase"
	"fitmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerContext(body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return e, c, rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Jane", Email: "jane@example.com", Role: entity.RoleUser}
	pair := &usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Run(func(ctx context.Context, input usecase.LoginInput) {
			assert.Equal(t, "jane@example.com", input.Email)
			assert.Equal(t, "secret123", input.Password)
		}).
		Return(user, pair, nil)

	_, c, rec := newAuthHandlerContext(`{"email":"jane@example.com","password":"secret123"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh"`)
	// Never echo the credential hash back.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Login_InvalidEmail(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	_, c, _ := newAuthHandlerContext(`{"email":"not-an-email","password":"secret123"}`)

	err := h.Login(c)

	var verrs *httpvalidator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Fields, 1)
	assert.Equal(t, "email", verrs.Fields[0].Field)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	_, c, _ := newAuthHandlerContext(`{"email":"jane@example.com"}`)

	err := h.Login(c)

	var verrs *httpvalidator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Fields, 1)
	assert.Equal(t, "password", verrs.Fields[0].Field)
}

func TestAuthHandler_RefreshToken_MissingToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	_, c, _ := newAuthHandlerContext(`{}`)

	err := h.RefreshToken(c)

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenRequired)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	pair := &usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	uc.EXPECT().
		Refresh(mock.Anything, "old-refresh", mock.AnythingOfType("usecase.ClientInfo")).
		Return(pair, nil)

	_, c, rec := newAuthHandlerContext(`{"refreshToken":"old-refresh"}`)

	err := h.RefreshToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"new-access"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"new-refresh"`)
}

func TestAuthHandler_RefreshToken_InvalidToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	uc.EXPECT().
		Refresh(mock.Anything, "stale", mock.AnythingOfType("usecase.ClientInfo")).
		Return(nil, domainerrors.ErrRefreshTokenInvalid)

	_, c, _ := newAuthHandlerContext(`{"refreshToken":"stale"}`)

	err := h.RefreshToken(c)

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	_, c, _ := newAuthHandlerContext(`{}`)

	err := h.Logout(c)

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenRequired)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	uc.EXPECT().Logout(mock.Anything, "refresh-value").Return(nil)

	_, c, rec := newAuthHandlerContext(`{"refreshToken":"refresh-value"}`)

	err := h.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestAuthHandler_Me_ReturnsAuthenticatedUser(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	user := &entity.User{ID: uuid.New(), Name: "Jane", Email: "jane@example.com", PasswordHash: "$2a$10$hash"}

	_, c, rec := newAuthHandlerContext(``)
	c.Set("user", user)

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	_, c, rec := newAuthHandlerContext(``)

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized, user not found")
}
