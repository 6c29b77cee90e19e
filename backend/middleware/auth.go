package middleware

import (
	"questboard/backend/apperror"
	"questboard/backend/config"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key under which SessionRequired stores the user id.
const UserIDKey = "user_id"

// SessionRequired rejects requests without a valid session cookie.
func SessionRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromCookie(c, cfg)
		if err != nil {
			return apperror.New(apperror.UnauthorizedError, "Unauthorized", err)
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID returns the id stored by SessionRequired.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(UserIDKey).(uint)
	return userID, ok && userID != 0
}
