// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/auth/handlers"
)

// AuthHandlers holds all the handlers this router needs
type AuthHandlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes is the single entry point for setting up auth routes.
// Both endpoints are public; they are how clients obtain a token in the
// first place.
func RegisterRoutes(app *fiber.App, handlers *AuthHandlers) {
	group := app.Group("/auth")

	group.Post("/token", handlers.AuthHandler.Token)
	group.Post("/register", handlers.AuthHandler.Register)
}
