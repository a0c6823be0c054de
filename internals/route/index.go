package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialearning_backend/internals/middlewares"
	authMiddleware "socialearning_backend/internals/middlewares/auth"
	routeDetails "socialearning_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== STUDENT (PUBLIC) =====================
	// Students authenticate by dni only; the group is rate limited and
	// rejected outright when persistence is unavailable.
	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/u",
		middlewares.RateLimiter(),
		middlewares.RequireDatabase(),
	)
	routeDetails.StudentRoutes(student, db)

	// ===================== TUTOR (ADMIN) =====================
	log.Println("[INFO] Setting up TUTOR group (login + JWT)...")
	adminAuth := app.Group("/api/a",
		middlewares.RequireDatabase(),
	)
	routeDetails.TutorAuthRoutes(adminAuth, db)

	admin := app.Group("/api/a",
		middlewares.RequireDatabase(),
		authMiddleware.TutorAuth(),
	)
	routeDetails.TutorAdminRoutes(admin, db)
}
