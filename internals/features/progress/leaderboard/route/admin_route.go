package router

import (
	leaderboardController "socialearning_backend/internals/features/progress/leaderboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeaderboardAdminRoutes mounts the tutor monitoring table.
func LeaderboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	leaderboardCtl := leaderboardController.NewLeaderboardController(db)

	r.Get("/students", leaderboardCtl.GetSubjectOverview) // GET /api/a/students?subject=
}
