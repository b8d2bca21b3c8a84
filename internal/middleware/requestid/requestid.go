package requestid

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/hirewire/hirewire/internal/pkg/log"
)

const (
	// HeaderRequestID is the HTTP header name for request ID
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the key used to store request ID in Fiber context
	ContextKeyRequestID = "request_id"
)

// New creates a middleware that generates or uses an existing X-Request-ID header
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)

		// If not present, generate a new UUID
		if requestID == "" {
			id, err := uuid.NewV4()
			if err != nil {
				id, _ = uuid.NewV4()
			}
			requestID = id.String()
		}

		// Store in context for use by handlers and logger
		c.Locals(ContextKeyRequestID, requestID)

		// Set response header so client can track the request
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}

// GetRequestID retrieves the request ID from Fiber context
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// Context returns a context.Context carrying the request ID, suitable for
// passing down to services and repositories so *WithContext log calls pick
// it up.
func Context(c *fiber.Ctx) context.Context {
	return log.WithRequestID(c.Context(), GetRequestID(c))
}
