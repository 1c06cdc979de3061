package auth

import (
	"github.com/gofiber/fiber/v2"

	"school-portal/app/models"
)

const identityKey = "identity"

// RequireRole gates a route group on the session role. Anything short of a
// valid session with the wanted role goes back to the login page; this is
// the only access-control mechanism in the system.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Redirect("/login")
		}

		identity, err := ValidateSessionToken(tokenString)
		if err != nil {
			clearSessionCookie(c)
			return c.Redirect("/login")
		}
		if identity.Role != role {
			return c.Redirect("/login")
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// CurrentIdentity returns the identity RequireRole attached to the request.
func CurrentIdentity(c *fiber.Ctx) Identity {
	identity, _ := c.Locals(identityKey).(Identity)
	return identity
}
