// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/internal/middleware/requestid"
	"github.com/hirewire/hirewire/users/errors"
	"github.com/hirewire/hirewire/users/models"
	"github.com/hirewire/hirewire/users/services"
	"github.com/hirewire/hirewire/users/validation"
)

// TokenIssuer signs a JWT for a freshly created user so admin-created
// accounts can start calling the API without a separate token request.
type TokenIssuer interface {
	TokenFor(user *models.User) (string, error)
}

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
	tokens      TokenIssuer
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService, tokens TokenIssuer) *UserHandler {
	return &UserHandler{userService: userService, tokens: tokens}
}

// Create handles admin user creation
// Endpoint: POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateUserRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.Create(requestid.Context(c), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.tokens.TokenFor(user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// List handles listing all users
// Endpoint: GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(requestid.Context(c))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"users": users})
}

// Get handles fetching a single user with their applications
// Endpoint: GET /users/:username
func (h *UserHandler) Get(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := h.userService.Get(requestid.Context(c), username)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"user": user})
}

// Update handles partial user updates
// Endpoint: PATCH /users/:username
func (h *UserHandler) Update(c *fiber.Ctx) error {
	username := c.Params("username")

	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateUserRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.Update(requestid.Context(c), username, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"user": user})
}

// Delete handles user deletion
// Endpoint: DELETE /users/:username
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := h.userService.Delete(requestid.Context(c), username); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": username})
}

// Apply handles job applications
// Endpoint: POST /users/:username/jobs/:id
func (h *UserHandler) Apply(c *fiber.Ctx) error {
	username := c.Params("username")

	jobID, err := strconv.Atoi(c.Params("id"))
	if err != nil || jobID <= 0 {
		return errors.HandleInvalidRequestError(c, "id must be a positive integer")
	}

	if err := h.userService.Apply(requestid.Context(c), username, jobID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"applied": jobID})
}
