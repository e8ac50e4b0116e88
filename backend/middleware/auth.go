package middleware

import (
	"coursehub/backend/config"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const userIDKey = "user_id"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's id for CurrentUserID.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID returns the id stored by AuthMiddleware, or "" outside it.
func CurrentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}
