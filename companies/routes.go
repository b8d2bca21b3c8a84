// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package companies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/companies/handlers"
	adminmw "github.com/hirewire/hirewire/internal/middleware/admin"
	"github.com/hirewire/hirewire/internal/middleware/authjwt"
	platformconfig "github.com/hirewire/hirewire/internal/platform/config"
)

// CompaniesHandlers holds all the handlers this router needs
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes is the single entry point for setting up companies routes
func RegisterRoutes(app *fiber.App, handlers *CompaniesHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		Secret:   cfg.JWT.Secret,
		ClaimKey: cfg.JWT.ClaimKey,
	})
	adminOnly := adminmw.New(adminmw.Config{})

	group := app.Group("/companies")

	// --- Read routes (any authenticated user) ---
	group.Get("/", authMiddleware, handlers.CompanyHandler.List)
	group.Get("/:handle", authMiddleware, handlers.CompanyHandler.Get)

	// --- Mutation routes (admin only) ---
	group.Post("/", authMiddleware, adminOnly, handlers.CompanyHandler.Create)
	group.Patch("/:handle", authMiddleware, adminOnly, handlers.CompanyHandler.Update)
	group.Delete("/:handle", authMiddleware, adminOnly, handlers.CompanyHandler.Delete)
}
