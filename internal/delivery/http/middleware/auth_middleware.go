package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"fitmarket/internal/delivery/http/response"
	"fitmarket/internal/domain/entity"
	"fitmarket/internal/domain/repository"
	"fitmarket/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// ContextKeyUser holds the resolved *entity.User.
	ContextKeyUser = "user"
	// ContextKeyUserID holds the uuid.UUID from the token subject.
	ContextKeyUserID = "userID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token and resolves the user it
// names. The user is re-fetched on every request so a deleted account is
// locked out immediately even while its tokens are still signed correctly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Error(c, http.StatusUnauthorized, "Not authorized, no token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			return response.Error(c, http.StatusUnauthorized, "Not authorized, no token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.ExpiredToken(c, http.StatusUnauthorized, "Token expired, please refresh token")
			}

			return response.Error(c, http.StatusUnauthorized, "Not authorized, token failed")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "Not authorized, user not found")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}

// RequireRoles is a middleware factory that checks the authenticated user's
// role against an allow list. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*entity.User)
			if !ok {
				return response.Error(c, http.StatusUnauthorized, "Not authorized, user not found")
			}

			if !roles.Contains(user.Role) {
				return response.Error(c, http.StatusForbidden,
					fmt.Sprintf("User role %s is not authorized to access this route", user.Role))
			}

			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user placed on the context by
// Authenticate. The bool reports whether it was present.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}
