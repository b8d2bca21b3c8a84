// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/companies/errors"
	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/companies/services"
	"github.com/hirewire/hirewire/companies/validation"
	"github.com/hirewire/hirewire/internal/middleware/requestid"
	"github.com/hirewire/hirewire/internal/server"
)

// CompanyHandler handles all company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create handles company creation
// Endpoint: POST /companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCompanyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.Create(requestid.Context(c), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// List handles company search
// Endpoint: GET /companies?name=&minEmployees=&maxEmployees=
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var filter models.CompanyFilter
	if err := server.DecodeQuery(c, &filter); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}

	companies, err := h.companyService.Search(requestid.Context(c), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"companies": companies})
}

// Get handles fetching a single company with its jobs
// Endpoint: GET /companies/:handle
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	handle := c.Params("handle")

	company, err := h.companyService.Get(requestid.Context(c), handle)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"company": company})
}

// Update handles partial company updates
// Endpoint: PATCH /companies/:handle
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	handle := c.Params("handle")

	var req models.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateCompanyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.Update(requestid.Context(c), handle, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"company": company})
}

// Delete handles company deletion
// Endpoint: DELETE /companies/:handle
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	handle := c.Params("handle")

	if err := h.companyService.Delete(requestid.Context(c), handle); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": handle})
}
