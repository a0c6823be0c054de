package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "socialearning_backend/internals/features/academics/students/model"
	"socialearning_backend/internals/features/academics/subjects/dto"
	"socialearning_backend/internals/features/academics/subjects/model"
	tutorModel "socialearning_backend/internals/features/academics/tutors/model"
	progressService "socialearning_backend/internals/features/progress/student_progress/service"
	helper "socialearning_backend/internals/helpers"
)

var validateSubject = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// =============================
// 📄 List subjects (public: the login form select)
// =============================
func (ctrl *SubjectController) GetAllSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctrl.DB.Order("name ASC").Find(&subjects).Error; err != nil {
		log.Println("[ERROR] loading subjects:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	var assignments []tutorModel.TutorSubjectModel
	if err := ctrl.DB.Find(&assignments).Error; err != nil {
		log.Println("[ERROR] loading tutor_subjects:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	tutorsBySubject := map[string][]string{}
	for _, a := range assignments {
		tutorsBySubject[a.TutorSubjectSubject] = append(tutorsBySubject[a.TutorSubjectSubject], a.TutorSubjectTutorName)
	}

	response := make([]dto.SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		response = append(response, dto.SubjectDTO{
			Name:   s.SubjectName,
			Tutors: tutorsBySubject[s.SubjectName],
		})
	}

	return helper.JsonList(c, "", response)
}

// =============================
// ➕ Create subject
// =============================
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	subject := model.SubjectModel{SubjectName: strings.TrimSpace(body.Name)}
	if err := ctrl.DB.Create(&subject).Error; err != nil {
		// The primary key resolves the duplicate, no pre-check needed.
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject already exists")
		}
		log.Println("[ERROR] creating subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.JsonCreated(c, "Subject created", dto.SubjectDTO{Name: subject.SubjectName})
}

// =============================
// ❌ Delete subject
// =============================
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := ctrl.DB.Delete(&model.SubjectModel{}, "name = ?", name).Error; err != nil {
		log.Println("[ERROR] deleting subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}

	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"name": name})
}

// =============================
// 🧹 Bulk semester reset
// =============================
// DELETE /api/a/subjects/:name/data wipes every progress record and
// every enrolled student of the subject. Destructive, no undo.
func (ctrl *SubjectController) ResetSubjectData(c *fiber.Ctx) error {
	name := c.Params("name")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := progressService.DeleteBySubject(tx, name); err != nil {
			return err
		}
		return tx.Where("subject = ?", name).Delete(&studentModel.StudentModel{}).Error
	})
	if err != nil {
		log.Println("[ERROR] resetting subject data:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset subject data")
	}

	log.Printf("[INFO] semester reset completed for subject %q", name)
	return helper.JsonDeleted(c, "Subject data cleared", fiber.Map{"subject": name})
}
