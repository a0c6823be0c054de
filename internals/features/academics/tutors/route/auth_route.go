package router

import (
	tutorController "socialearning_backend/internals/features/academics/tutors/controller"
	"socialearning_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TutorAuthRoutes mounts the login endpoint. It sits outside the JWT
// guard and carries its own stricter rate limit.
func TutorAuthRoutes(r fiber.Router, db *gorm.DB) {
	authCtl := tutorController.NewTutorAuthController(db)

	auth := r.Group("/auth", middlewares.LoginRateLimiter())
	auth.Post("/login", authCtl.Login) // POST /api/a/auth/login
}
