// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitmarket/internal/delivery/http/middleware"
	"fitmarket/internal/delivery/http/router/handler"
	"fitmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	InstructorHandler *handler.InstructorHandler
	ClassHandler      *handler.ClassHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	instructorHandler *handler.InstructorHandler
	classHandler      *handler.ClassHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		instructorHandler: params.InstructorHandler,
		classHandler:      params.ClassHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// User routes; registration is open, management requires authentication
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("", r.userHandler.List,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleAdmin))
		userGroup.GET("/:id", r.userHandler.Get, r.authMiddleware.Authenticate)
		userGroup.PUT("/:id", r.userHandler.Update, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleAdmin))
	}

	// Instructor routes; the catalog is public, mutations are restricted
	instructorGroup := api.Group("/instructors")
	{
		instructorGroup.GET("", r.instructorHandler.List)
		instructorGroup.GET("/:id", r.instructorHandler.Get)
		instructorGroup.POST("", r.instructorHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
		instructorGroup.PUT("/:id", r.instructorHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
		instructorGroup.DELETE("/:id", r.instructorHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleAdmin))
	}

	// Class routes; browsing is public, mutations restricted, enrollment
	// open to any authenticated user
	classGroup := api.Group("/classes")
	{
		classGroup.GET("", r.classHandler.List)
		classGroup.GET("/:id", r.classHandler.Get)
		classGroup.POST("", r.classHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
		classGroup.PUT("/:id", r.classHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
		classGroup.DELETE("/:id", r.classHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
		classGroup.POST("/:id/enroll", r.classHandler.Enroll, r.authMiddleware.Authenticate)
	}
}
