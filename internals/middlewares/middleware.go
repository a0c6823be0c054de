package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	mlogger "socialearning_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(mlogger.SetupLogger())

	log.Println("✅ Global middlewares registered")
}
