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
	"github.com/hirewire/hirewire/internal/server"
	"github.com/hirewire/hirewire/jobs/errors"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/hirewire/hirewire/jobs/services"
	"github.com/hirewire/hirewire/jobs/validation"
)

// JobHandler handles all job-related HTTP requests
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// jobID parses the :id route parameter
func jobID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Create handles job creation
// Endpoint: POST /jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateJobRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.Create(requestid.Context(c), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// List handles job search
// Endpoint: GET /jobs?title=&minSalary=&hasEquity=
func (h *JobHandler) List(c *fiber.Ctx) error {
	var filter models.JobFilter
	if err := server.DecodeQuery(c, &filter); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}

	jobs, err := h.jobService.Search(requestid.Context(c), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"jobs": jobs})
}

// Get handles fetching a single job
// Endpoint: GET /jobs/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, ok := jobID(c)
	if !ok {
		return errors.HandleInvalidRequestError(c, "id must be a positive integer")
	}

	job, err := h.jobService.Get(requestid.Context(c), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"job": job})
}

// Update handles partial job updates
// Endpoint: PATCH /jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := jobID(c)
	if !ok {
		return errors.HandleInvalidRequestError(c, "id must be a positive integer")
	}

	var req models.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateJobRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.Update(requestid.Context(c), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"job": job})
}

// Delete handles job deletion
// Endpoint: DELETE /jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := jobID(c)
	if !ok {
		return errors.HandleInvalidRequestError(c, "id must be a positive integer")
	}

	if err := h.jobService.Delete(requestid.Context(c), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": id})
}
