package details

import (
	questionRoute "socialearning_backend/internals/features/academics/questions/route"
	studentRoute "socialearning_backend/internals/features/academics/students/route"
	subjectRoute "socialearning_backend/internals/features/academics/subjects/route"
	leaderboardRoute "socialearning_backend/internals/features/progress/leaderboard/route"
	progressRoute "socialearning_backend/internals/features/progress/student_progress/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentRoutes mounts everything the student portal calls.
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentUserRoutes(r, db)
	progressRoute.ProgressUserRoutes(r, db)
	leaderboardRoute.LeaderboardUserRoutes(r, db)
	questionRoute.QuestionUserRoutes(r, db)
	subjectRoute.SubjectUserRoutes(r, db)
}
