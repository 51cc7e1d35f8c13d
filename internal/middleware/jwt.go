package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier checks an access token and returns its subject login.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTAuth returns a middleware that validates bearer tokens and stores the
// subject login in the request locals.
func JWTAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		subject, err := verifier.Verify(tokenStr)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals("login", subject)
		return c.Next()
	}
}
