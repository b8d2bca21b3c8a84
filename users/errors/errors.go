// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
)

// User service specific errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrJobNotFound          = errors.New("job not found")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrValidationFailed     = errors.New("validation failed")
)

// Error codes
const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeDuplicateUser        = "DUPLICATE_USER"
	CodeJobNotFound          = "JOB_NOT_FOUND"
	CodeDuplicateApplication = "DUPLICATE_APPLICATION"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeValidationFailed     = "VALIDATION_FAILED"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDuplicateUser):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateUser,
			Message: "A user with this username or email already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDuplicateApplication):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateApplication,
			Message: "User already applied to this job",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username or password",
			Details: err.Error(),
		})
	case errors.Is(err, sqlbuilder.ErrNoFields):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "No fields to update",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
		Details: message,
	})
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}
