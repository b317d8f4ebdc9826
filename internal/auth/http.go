package auth

import (
	"github.com/gofiber/fiber/v2"
)

const principalLocalsKey = "principal"

// OptionalBearer returns middleware that authenticates a caller when an
// Authorization header is present and lets anonymous requests through.
// A nil manager disables authentication entirely.
func OptionalBearer(tm *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tm == nil {
			return c.Next()
		}
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}
		p, err := tm.ParseBearer(header)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		c.Locals(principalLocalsKey, p)
		c.SetUserContext(WithPrincipal(c.UserContext(), p))
		return c.Next()
	}
}

// PrincipalFrom returns the caller authenticated by OptionalBearer, if any.
func PrincipalFrom(c *fiber.Ctx) (*Principal, bool) {
	p, ok := c.Locals(principalLocalsKey).(*Principal)
	return p, ok && p != nil
}

// RequireOwner rejects an authenticated caller that does not own ownerID.
// Anonymous callers pass.
func RequireOwner(c *fiber.Ctx, ownerID *int64) error {
	p, ok := PrincipalFrom(c)
	if !ok {
		return nil
	}
	if ownerID == nil || *ownerID != p.UserID {
		return fiber.NewError(fiber.StatusForbidden, "Access forbidden")
	}
	return nil
}
