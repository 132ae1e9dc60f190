package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

const (
	localUserID   = "user_id"
	localUserRole = "user_role"
)

// Middleware validates access tokens and stores the caller's identity
// in the request context
func Middleware(tokenService *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer token")
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			return ErrInvalidToken()
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localUserRole, claims.Role)

		return c.Next()
	}
}

// RequireRole only lets callers of the given role through. Must run after
// Middleware.
func RequireRole(role kernel.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerRole, ok := GetUserRole(c)
		if !ok || callerRole != role {
			return ErrRoleNotAllowed().WithDetail("required_role", string(role))
		}
		return c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the request context
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals(localUserID).(kernel.UserID)
	return userID, ok
}

// GetUserRole extracts the authenticated user's role from the request context
func GetUserRole(c *fiber.Ctx) (kernel.UserRole, bool) {
	role, ok := c.Locals(localUserRole).(kernel.UserRole)
	return role, ok
}
