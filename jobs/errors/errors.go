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

// Job service specific errors
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrValidationFailed = errors.New("validation failed")
)

// Error codes
const (
	CodeJobNotFound      = "JOB_NOT_FOUND"
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidFilter    = "INVALID_FILTER"
	CodeValidationFailed = "VALIDATION_FAILED"
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
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCompanyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCompanyNotFound,
			Message: "Company not found",
			Details: err.Error(),
		})
	case errors.Is(err, sqlbuilder.ErrNoFields):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "No fields to update",
			Details: err.Error(),
		})
	case errors.Is(err, sqlbuilder.ErrMissingFilter), errors.Is(err, sqlbuilder.ErrInvertedRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidFilter,
			Message: "Invalid search filter",
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
