package router

import (
	tutorController "socialearning_backend/internals/features/academics/tutors/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TutorAdminRoutes: tutor accounts and their subject assignments.
func TutorAdminRoutes(r fiber.Router, db *gorm.DB) {
	tutorCtl := tutorController.NewTutorController(db)

	tutors := r.Group("/tutors")
	tutors.Get("/", tutorCtl.GetAllTutors)        // GET    /api/a/tutors
	tutors.Post("/", tutorCtl.CreateTutor)        // POST   /api/a/tutors
	tutors.Delete("/:name", tutorCtl.DeleteTutor) // DELETE /api/a/tutors/:name

	assignments := r.Group("/tutor-subjects")
	assignments.Post("/", tutorCtl.AssignSubject)     // POST   /api/a/tutor-subjects
	assignments.Delete("/", tutorCtl.UnassignSubject) // DELETE /api/a/tutor-subjects
}
