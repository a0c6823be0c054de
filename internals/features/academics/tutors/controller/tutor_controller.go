package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialearning_backend/internals/features/academics/tutors/dto"
	"socialearning_backend/internals/features/academics/tutors/model"
	helper "socialearning_backend/internals/helpers"
)

var validateTutor = validator.New()

type TutorController struct {
	DB *gorm.DB
}

func NewTutorController(db *gorm.DB) *TutorController {
	return &TutorController{DB: db}
}

// =============================
// 📄 List tutors with subjects
// =============================
func (ctrl *TutorController) GetAllTutors(c *fiber.Ctx) error {
	var tutors []model.TutorModel
	if err := ctrl.DB.Order("name ASC").Find(&tutors).Error; err != nil {
		log.Println("[ERROR] loading tutors:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tutors")
	}

	var assignments []model.TutorSubjectModel
	if err := ctrl.DB.Find(&assignments).Error; err != nil {
		log.Println("[ERROR] loading tutor_subjects:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	bySubject := map[string][]string{}
	for _, a := range assignments {
		bySubject[a.TutorSubjectTutorName] = append(bySubject[a.TutorSubjectTutorName], a.TutorSubjectSubject)
	}

	response := make([]dto.TutorDTO, 0, len(tutors))
	for _, t := range tutors {
		response = append(response, dto.TutorDTO{
			Name:     t.TutorName,
			Subjects: bySubject[t.TutorName],
		})
	}

	return helper.JsonList(c, "", response)
}

// =============================
// ➕ Create tutor (+ initial subject assignments)
// =============================
func (ctrl *TutorController) CreateTutor(c *fiber.Ctx) error {
	var body dto.CreateTutorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTutor.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	name := strings.TrimSpace(body.Name)

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] hashing password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tutor")
	}

	tutor := model.TutorModel{TutorName: name, TutorPasswordHash: string(hash)}
	if err := ctrl.DB.Create(&tutor).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Tutor already exists")
		}
		log.Println("[ERROR] creating tutor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tutor")
	}

	for _, subject := range body.Subjects {
		assignment := model.TutorSubjectModel{
			TutorSubjectTutorName: name,
			TutorSubjectSubject:   strings.TrimSpace(subject),
		}
		if err := ctrl.DB.Create(&assignment).Error; err != nil && !helper.IsUniqueViolation(err) {
			log.Println("[ERROR] assigning subject:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Tutor created but subject assignment failed")
		}
	}

	return helper.JsonCreated(c, "Tutor created", dto.TutorDTO{Name: name, Subjects: body.Subjects})
}

// =============================
// ❌ Delete tutor (cascades assignments)
// =============================
func (ctrl *TutorController) DeleteTutor(c *fiber.Ctx) error {
	name := c.Params("name")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tutor_name = ?", name).Delete(&model.TutorSubjectModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TutorModel{}, "name = ?", name).Error
	})
	if err != nil {
		log.Println("[ERROR] deleting tutor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete tutor")
	}

	return helper.JsonDeleted(c, "Tutor deleted", fiber.Map{"name": name})
}

// =============================
// ➕ Assign tutor to subject
// =============================
func (ctrl *TutorController) AssignSubject(c *fiber.Ctx) error {
	var body dto.AssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTutor.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	assignment := model.TutorSubjectModel{
		TutorSubjectTutorName: strings.TrimSpace(body.TutorName),
		TutorSubjectSubject:   strings.TrimSpace(body.Subject),
	}
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// Set membership: assigning twice is not an error.
			return helper.JsonOK(c, "Already assigned", body)
		}
		log.Println("[ERROR] creating assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign tutor")
	}

	return helper.JsonCreated(c, "Tutor assigned", body)
}

// =============================
// ❌ Remove tutor from subject
// =============================
func (ctrl *TutorController) UnassignSubject(c *fiber.Ctx) error {
	var body dto.AssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTutor.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := ctrl.DB.
		Where("tutor_name = ? AND subject = ?", body.TutorName, body.Subject).
		Delete(&model.TutorSubjectModel{}).Error
	if err != nil {
		log.Println("[ERROR] deleting assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove assignment")
	}

	return helper.JsonDeleted(c, "Tutor unassigned", body)
}
