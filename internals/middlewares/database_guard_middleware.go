package middlewares

import (
	"github.com/gofiber/fiber/v2"

	database "socialearning_backend/internals/databases"
	helper "socialearning_backend/internals/helpers"
)

// RequireDatabase rejects requests early when the service runs without a
// database connection, instead of letting every handler nil-check.
func RequireDatabase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !database.Configured() {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Persistence is not configured")
		}
		return c.Next()
	}
}
