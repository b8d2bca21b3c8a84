// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"github.com/gofiber/fiber/v2"
	adminmw "github.com/hirewire/hirewire/internal/middleware/admin"
	"github.com/hirewire/hirewire/internal/middleware/authjwt"
	platformconfig "github.com/hirewire/hirewire/internal/platform/config"
	"github.com/hirewire/hirewire/users/handlers"
)

// UsersHandlers holds all the handlers this router needs
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up users routes
func RegisterRoutes(app *fiber.App, handlers *UsersHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		Secret:   cfg.JWT.Secret,
		ClaimKey: cfg.JWT.ClaimKey,
	})
	adminOnly := adminmw.New(adminmw.Config{})
	selfOrAdmin := adminmw.New(adminmw.Config{
		HasAccess: adminmw.SelfOrAdmin("username"),
	})

	group := app.Group("/users")

	// --- Admin-only routes ---
	group.Post("/", authMiddleware, adminOnly, handlers.UserHandler.Create)
	group.Get("/", authMiddleware, adminOnly, handlers.UserHandler.List)

	// --- Admin-or-same-user routes ---
	group.Get("/:username", authMiddleware, selfOrAdmin, handlers.UserHandler.Get)
	group.Patch("/:username", authMiddleware, selfOrAdmin, handlers.UserHandler.Update)
	group.Delete("/:username", authMiddleware, selfOrAdmin, handlers.UserHandler.Delete)
	group.Post("/:username/jobs/:id", authMiddleware, selfOrAdmin, handlers.UserHandler.Apply)
}
