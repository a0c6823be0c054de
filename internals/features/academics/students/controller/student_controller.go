package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	subjectModel "socialearning_backend/internals/features/academics/subjects/model"
	"socialearning_backend/internals/features/academics/students/dto"
	"socialearning_backend/internals/features/academics/students/model"
	tutorModel "socialearning_backend/internals/features/academics/tutors/model"
	progressController "socialearning_backend/internals/features/progress/student_progress/controller"
	helper "socialearning_backend/internals/helpers"
)

var validateStudent = validator.New()

type StudentController struct {
	DB       *gorm.DB
	Progress *progressController.StudentProgressController
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:       db,
		Progress: progressController.NewStudentProgressController(db),
	}
}

// POST /api/u/students/login
// The only student entry point: dni + subject. Creates the student on
// first login, then behaves exactly like a board load (session reset
// included). No credential is involved; see the tutor panel for the
// authenticated surface.
func (ctrl *StudentController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	body.Subject = strings.TrimSpace(body.Subject)

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "name = ?", body.Subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown subject")
		}
		log.Println("[ERROR] loading subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subject")
	}

	nickname := strings.TrimSpace(body.Nickname)
	if nickname == "" {
		nickname = dto.DefaultNickname(body.DNI)
	}

	student := model.StudentModel{
		StudentDNI:      body.DNI,
		StudentNickname: nickname,
		StudentSubject:  body.Subject,
		StudentTutor:    ctrl.tutorForSubject(body.Subject),
	}

	// Upsert keyed by dni; re-login with a different nickname or subject
	// simply overwrites (last write wins, no conflict resolution).
	err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dni"}},
		DoUpdates: clause.AssignmentColumns([]string{"nickname", "subject", "tutor", "updated_at"}),
	}).Create(&student).Error
	if err != nil {
		log.Println("[ERROR] upserting student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}

	board, err := ctrl.Progress.BoardForLogin(student)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load progress")
	}
	return helper.JsonOK(c, "Bienvenido de vuelta", board)
}

// GET /api/u/students/:dni
// Lookup used by the login form to autocomplete nickname and subject.
// Unknown dni means "new student", answered as 404 so the form leaves
// the fields editable.
func (ctrl *StudentController) GetByDNI(c *fiber.Ctx) error {
	dni := c.Params("dni")

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "dni = ?", dni).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] loading student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	return helper.JsonOK(c, "", dto.ToStudentDTO(student))
}

// tutorForSubject resolves the display tutor for a subject from the
// assignment table: first assigned tutor by name. Subjects without
// tutors get an empty string, same as the historical behavior.
func (ctrl *StudentController) tutorForSubject(subject string) string {
	var assignment tutorModel.TutorSubjectModel
	err := ctrl.DB.
		Where("subject = ?", subject).
		Order("tutor_name ASC").
		First(&assignment).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] resolving tutor for subject:", err)
		}
		return ""
	}
	return assignment.TutorSubjectTutorName
}
