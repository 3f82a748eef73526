package middleware

import (
	"inventory-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	// TokenHeader carries the session token on protected routes.
	TokenHeader = "x-auth-token"

	userIDKey = "user_id"
)

// TokenVerifier checks a session token. *jwt.TokenService implements it.
type TokenVerifier interface {
	Verify(tokenString string) (*jwt.Claims, error)
}

// RequireAuth rejects requests without a valid session token and stores the
// caller's user ID in the request locals. It never touches a store.
func RequireAuth(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "No token, authorization denied"})
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Token is not valid"})
		}

		c.Locals(userIDKey, claims.User.ID)
		return c.Next()
	}
}

// UserID returns the identity attached by RequireAuth, or "" outside protected routes.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
