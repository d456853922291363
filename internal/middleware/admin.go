package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/identity"
)

// AdminChecker reports whether the given principal email holds admin
// privilege. Satisfied by services.UserService.
type AdminChecker interface {
	IsAdmin(email string) (bool, error)
}

// AdminRequired is the one authorization gate for admin routes; it runs after
// Authenticated and re-checks the caller's stored role on every request.
func AdminRequired(checker AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := identity.GetPrincipal(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		isAdmin, err := checker.IsAdmin(principal.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
