package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"proptrack/internal/database"
	"proptrack/internal/response"
)

const localsUser = "user"

// RequireAuth verifies the bearer credential against the access-token table
// and attaches the resolved user to the request.
func RequireAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return response.NewUnauthorized()
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.NewUnauthorized()
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		var accessToken database.AccessToken
		result := db.First(&accessToken, "token = ?", token)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return response.NewUnauthorized()
			}
			return response.NewInternal(result.Error)
		}

		if !accessToken.ExpiredAt.IsZero() && accessToken.ExpiredAt.Before(time.Now()) {
			return response.NewUnauthorized()
		}

		var user database.User
		result = db.First(&user, "id = ?", accessToken.UserID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return response.NewUnauthorized()
			}
			return response.NewInternal(result.Error)
		}

		c.Locals(localsUser, user)

		return c.Next()
	}
}

// AuthUser returns the user resolved by RequireAuth. Only valid on routes
// behind the auth gate.
func AuthUser(c *fiber.Ctx) database.User {
	return c.Locals(localsUser).(database.User)
}
