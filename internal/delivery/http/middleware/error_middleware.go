package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"fitmarket/config"
	"fitmarket/internal/delivery/http/response"
	"fitmarket/internal/delivery/http/validator"
	domainerrors "fitmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the single response-shaping point for errors. Handlers
// and use cases return errors; everything below the boundary only wraps and
// propagates.
type ErrorMiddleware struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		cfg:    cfg,
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field-level validation failures carry their own 400 shape.
	var verrs *validator.ValidationErrors
	if errors.As(err, &verrs) {
		_ = response.ValidationFailed(c, http.StatusBadRequest, verrs.Fields)

		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Default to internal error, log and return a generic message
	m.logError(err, c)

	if m.cfg != nil && m.cfg.Env.Debug {
		_ = c.JSON(http.StatusInternalServerError, response.Body{
			Success: false,
			Error:   "Server Error",
			Stack:   fmt.Sprintf("%+v", err),
		})

		return
	}

	_ = response.Error(c, http.StatusInternalServerError, "Server Error")
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
