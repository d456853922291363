package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/identity"
)

// Authenticated requires a bearer credential. A missing or malformed
// Authorization header is 401; a header that is present but fails
// verification is 403. On success the principal is attached to the request
// context for downstream handlers.
func Authenticated(verifier identity.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: missing bearer token",
			})
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: missing bearer token",
			})
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden: invalid or expired token",
			})
		}

		identity.SetPrincipal(c, principal)
		return c.Next()
	}
}
