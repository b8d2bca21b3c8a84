// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jobs

import (
	"github.com/gofiber/fiber/v2"
	adminmw "github.com/hirewire/hirewire/internal/middleware/admin"
	"github.com/hirewire/hirewire/internal/middleware/authjwt"
	platformconfig "github.com/hirewire/hirewire/internal/platform/config"
	"github.com/hirewire/hirewire/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes is the single entry point for setting up jobs routes
func RegisterRoutes(app *fiber.App, handlers *JobsHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		Secret:   cfg.JWT.Secret,
		ClaimKey: cfg.JWT.ClaimKey,
	})
	adminOnly := adminmw.New(adminmw.Config{})

	group := app.Group("/jobs")

	// --- Read routes (any authenticated user) ---
	group.Get("/", authMiddleware, handlers.JobHandler.List)
	group.Get("/:id", authMiddleware, handlers.JobHandler.Get)

	// --- Mutation routes (admin only) ---
	group.Post("/", authMiddleware, adminOnly, handlers.JobHandler.Create)
	group.Patch("/:id", authMiddleware, adminOnly, handlers.JobHandler.Update)
	group.Delete("/:id", authMiddleware, adminOnly, handlers.JobHandler.Delete)
}
