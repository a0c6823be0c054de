package router

import (
	progressController "socialearning_backend/internals/features/progress/student_progress/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	progressCtl := progressController.NewStudentProgressController(db)

	students := r.Group("/students")
	students.Get("/:dni/board", progressCtl.GetBoard)       // GET  /api/u/students/:dni/board?subject=
	students.Post("/:dni/answers", progressCtl.AnswerMission) // POST /api/u/students/:dni/answers
}
