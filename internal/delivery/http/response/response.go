// Package response shapes every JSON body the API returns. Handlers and the
// error handler go through these helpers so the envelope stays uniform.
package response

import (
	"github.com/labstack/echo/v4"
)

// Body is the unified API response envelope.
type Body struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`  // Number of items, for list responses.
	Data    any    `json:"data,omitempty"`   // Payload on success.
	Error   string `json:"error,omitempty"`  // User-facing message on failure.
	Errors  any    `json:"errors,omitempty"` // Field-level validation failures.
	// IsExpired signals an expired access token so clients refresh instead of
	// re-authenticating.
	IsExpired bool `json:"isExpired,omitempty"`
	// Stack is included in debug builds only.
	Stack string `json:"stack,omitempty"`
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Body{
		Success: true,
		Data:    data,
	})
}

// List writes a successful list response with an item count.
func List(c echo.Context, statusCode int, count int, data any) error {
	return c.JSON(statusCode, Body{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Error writes a failure response with a single user-facing message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{
		Success: false,
		Error:   message,
	})
}

// ExpiredToken writes the 401 for an expired access token, flagged so the
// client knows to call the refresh endpoint.
func ExpiredToken(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{
		Success:   false,
		Error:     message,
		IsExpired: true,
	})
}

// ValidationFailed writes a 400 carrying per-field validation messages.
func ValidationFailed(c echo.Context, statusCode int, fields any) error {
	return c.JSON(statusCode, Body{
		Success: false,
		Errors:  fields,
	})
}
