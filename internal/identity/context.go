package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// SetPrincipal stores the verified principal on the request context.
func SetPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}

// GetPrincipal returns the principal attached by the auth middleware.
func GetPrincipal(c *fiber.Ctx) (*Principal, error) {
	p, ok := c.Locals(principalKey).(*Principal)
	if !ok || p == nil {
		return nil, errors.New("no principal in context")
	}
	return p, nil
}
