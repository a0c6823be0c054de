package router

import (
	questionController "socialearning_backend/internals/features/academics/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func QuestionUserRoutes(r fiber.Router, db *gorm.DB) {
	questionCtl := questionController.NewUserQuestionController(db)

	r.Get("/questions", questionCtl.GetQuestionsForMission) // GET /api/u/questions?subject=&module=
}
