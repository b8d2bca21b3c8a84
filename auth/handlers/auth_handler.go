// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/auth/models"
	"github.com/hirewire/hirewire/auth/services"
	"github.com/hirewire/hirewire/internal/middleware/requestid"
	userErrors "github.com/hirewire/hirewire/users/errors"
	usermodels "github.com/hirewire/hirewire/users/models"
	"github.com/hirewire/hirewire/users/validation"
)

// AuthHandler handles token issuance and self sign-up
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler with injected dependencies
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles credential verification and token issuance
// Endpoint: POST /auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return userErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return userErrors.HandleValidationError(c, "username and password are required")
	}

	token, err := h.authService.Token(requestid.Context(c), req.Username, req.Password)
	if err != nil {
		return userErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(models.TokenResponse{Token: token})
}

// Register handles self sign-up
// Endpoint: POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return userErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateUserRequest(&usermodels.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}); err != nil {
		return userErrors.HandleValidationError(c, err.Error())
	}

	user, token, err := h.authService.Register(requestid.Context(c), &req)
	if err != nil {
		return userErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(models.RegisterResponse{
		Token: token,
		User:  user,
	})
}
