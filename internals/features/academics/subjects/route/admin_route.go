package router

import (
	subjectController "socialearning_backend/internals/features/academics/subjects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubjectAdminRoutes: subject catalog management plus the end-of-term
// reset that wipes a subject's students and progress.
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	subjectCtl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", subjectCtl.GetAllSubjects)         // GET    /api/a/subjects
	subjects.Post("/", subjectCtl.CreateSubject)         // POST   /api/a/subjects
	subjects.Delete("/:name", subjectCtl.DeleteSubject)        // DELETE /api/a/subjects/:name
	subjects.Delete("/:name/data", subjectCtl.ResetSubjectData) // DELETE /api/a/subjects/:name/data
}
