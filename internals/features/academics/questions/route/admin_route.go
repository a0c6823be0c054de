package router

import (
	questionController "socialearning_backend/internals/features/academics/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuestionAdminRoutes: full CRUD over the quiz bank, answers included.
func QuestionAdminRoutes(r fiber.Router, db *gorm.DB) {
	questionCtl := questionController.NewQuestionController(db)

	questions := r.Group("/questions")
	questions.Get("/", questionCtl.GetAllQuestions)    // GET    /api/a/questions?subject=&module=
	questions.Post("/", questionCtl.CreateQuestion)    // POST   /api/a/questions
	questions.Put("/:id", questionCtl.UpdateQuestion)  // PUT    /api/a/questions/:id
	questions.Delete("/:id", questionCtl.DeleteQuestion) // DELETE /api/a/questions/:id
}
