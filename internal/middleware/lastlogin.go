package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"proptrack/internal/platform/user"
)

// TouchLastLogin records activity for the authenticated user. Failures are
// logged and swallowed; the primary request is never aborted.
func TouchLastLogin(users *user.UserService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authUser := AuthUser(c)

		if err := users.TouchLastLogin(authUser.ID); err != nil {
			log.Warn().Err(err).Str("userId", authUser.ID).Msg("Failed to update last login")
		}

		return c.Next()
	}
}
