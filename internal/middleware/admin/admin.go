package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire/internal/types"
)

type Config struct {
	UserCtxName string
	// Optional override to check custom permission instead of strict role
	HasAccess func(c *fiber.Ctx, u types.UserContext) bool
}

// New gates a route on the authenticated user's role. Without a HasAccess
// hook it requires an admin; with one, the hook decides (used for
// admin-or-same-user routes).
func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "missing user context",
			})
		}
		// Custom access hook if provided
		if config.HasAccess != nil {
			if !config.HasAccess(c, user) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"code":    "FORBIDDEN",
					"message": "insufficient permissions",
				})
			}
			return c.Next()
		}
		// Default: require admin
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "FORBIDDEN",
				"message": "admin access required",
			})
		}
		return c.Next()
	}
}

// SelfOrAdmin builds a HasAccess hook that allows admins and the user named
// by the given route parameter.
func SelfOrAdmin(param string) func(c *fiber.Ctx, u types.UserContext) bool {
	return func(c *fiber.Ctx, u types.UserContext) bool {
		return u.IsAdmin || c.Params(param) == u.Username
	}
}
