package details

import (
	questionRoute "socialearning_backend/internals/features/academics/questions/route"
	subjectRoute "socialearning_backend/internals/features/academics/subjects/route"
	tutorRoute "socialearning_backend/internals/features/academics/tutors/route"
	leaderboardRoute "socialearning_backend/internals/features/progress/leaderboard/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TutorAuthRoutes mounts the tutor login, outside the JWT guard.
func TutorAuthRoutes(r fiber.Router, db *gorm.DB) {
	tutorRoute.TutorAuthRoutes(r, db)
}

// TutorAdminRoutes mounts the protected administration surface.
func TutorAdminRoutes(r fiber.Router, db *gorm.DB) {
	tutorRoute.TutorAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	questionRoute.QuestionAdminRoutes(r, db)
	leaderboardRoute.LeaderboardAdminRoutes(r, db)
}
