package authjwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hirewire/hirewire/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The HMAC secret for validating HS256 tokens.
	Secret string
	// The claim key where the UserContext is stored.
	ClaimKey string
	// The context key to store the UserContext.
	UserCtxName string
	// Optional: when true, requests without a token pass through with no
	// user context instead of failing. Route-level gates then decide.
	Optional bool
}

// New creates a new middleware handler.
func New(cfg Config) fiber.Handler {
	userCtxName := cfg.UserCtxName
	if userCtxName == "" {
		userCtxName = types.UserCtxName
	}
	claimKey := cfg.ClaimKey
	if claimKey == "" {
		claimKey = "claim"
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		// 1. Try Authorization header first (for mobile/API clients)
		authHeader := c.Get(types.HeaderAuthorization)
		if authHeader != "" && strings.HasPrefix(authHeader, types.BearerPrefix) {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 {
				tokenString = parts[1]
			}
		}

		// 2. Fall back to access_token cookie (for web browsers)
		if tokenString == "" {
			tokenString = c.Cookies("access_token")
		}

		// 3. If no token found in either place, fail (or pass through when optional)
		if tokenString == "" {
			if cfg.Optional {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}

		userCtx, err := ValidateToken(tokenString, cfg.Secret, claimKey)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token",
				"details": err.Error(),
			})
		}

		c.Locals(userCtxName, userCtx)
		return c.Next()
	}
}

// ValidateToken validates a JWT token and returns the UserContext if valid.
// This is a pure validation function that does NOT write to the response, so
// other middleware and tests can validate tokens without side effects.
func ValidateToken(tokenString string, secret string, claimKey string) (types.UserContext, error) {
	var userCtx types.UserContext

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// CRITICAL: Enforce the expected signing algorithm.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return userCtx, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return userCtx, fmt.Errorf("invalid token")
	}

	// Check if token is expired
	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < time.Now().Unix() {
			return userCtx, fmt.Errorf("token has expired")
		}
	}

	// Extract the claim data
	claimData, claimOk := claims[claimKey].(map[string]interface{})
	if !claimOk {
		return userCtx, fmt.Errorf("invalid token claim format")
	}

	return mapToUserContext(claimData)
}

// mapToUserContext converts claim data to UserContext
func mapToUserContext(claimData map[string]interface{}) (types.UserContext, error) {
	var userCtx types.UserContext

	username, ok := claimData["username"].(string)
	if !ok || username == "" {
		return userCtx, fmt.Errorf("missing or invalid username in claim")
	}
	userCtx.Username = username

	if isAdmin, ok := claimData["isAdmin"].(bool); ok {
		userCtx.IsAdmin = isAdmin
	}

	return userCtx, nil
}
