package router

import (
	leaderboardController "socialearning_backend/internals/features/progress/leaderboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LeaderboardUserRoutes(r fiber.Router, db *gorm.DB) {
	leaderboardCtl := leaderboardController.NewLeaderboardController(db)

	r.Get("/leaderboard", leaderboardCtl.GetLeaderboard) // GET /api/u/leaderboard?subject=
}
