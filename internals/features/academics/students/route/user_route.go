package router

import (
	studentController "socialearning_backend/internals/features/academics/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentUserRoutes mounts the student entry points.
// Mount example: StudentUserRoutes(app.Group("/api/u"), db)
func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	studentCtl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/login", studentCtl.Login) // POST /api/u/students/login
	students.Get("/:dni", studentCtl.GetByDNI) // GET  /api/u/students/:dni
}
