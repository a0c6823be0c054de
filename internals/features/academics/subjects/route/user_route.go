package router

import (
	subjectController "socialearning_backend/internals/features/academics/subjects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	subjectCtl := subjectController.NewSubjectController(db)

	r.Get("/subjects", subjectCtl.GetAllSubjects) // GET /api/u/subjects
}
