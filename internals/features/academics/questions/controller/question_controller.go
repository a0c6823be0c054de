package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialearning_backend/internals/features/academics/questions/dto"
	"socialearning_backend/internals/features/academics/questions/model"
	helper "socialearning_backend/internals/helpers"
)

var validateQuestion = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =============================
// ➕ Create question
// =============================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.CorrectOption >= len(body.Options) {
		return helper.JsonError(c, fiber.StatusBadRequest, "correct_option must reference one of the options")
	}

	question := model.QuestionModel{
		QuestionID:            uuid.NewString(),
		QuestionSubject:       body.Subject,
		QuestionModule:        body.Module,
		QuestionText:          body.Question,
		QuestionOptions:       body.Options,
		QuestionCorrectOption: body.CorrectOption,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		log.Println("[ERROR] creating question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.JsonCreated(c, "Question created", dto.ToQuestionDTO(question))
}

// =============================
// 📄 List questions (optionally filtered by subject / module)
// =============================
func (ctrl *QuestionController) GetAllQuestions(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.QuestionModel{})
	if subject := c.Query("subject"); subject != "" {
		q = q.Where("subject = ?", subject)
	}
	if moduleStr := c.Query("module"); moduleStr != "" {
		module, err := strconv.Atoi(moduleStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "module must be a number")
		}
		q = q.Where("module = ?", module)
	}

	var questions []model.QuestionModel
	if err := q.Order("subject ASC, module ASC, created_at ASC").Find(&questions).Error; err != nil {
		log.Println("[ERROR] loading questions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	response := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		response = append(response, dto.ToQuestionDTO(q))
	}
	return helper.JsonList(c, "", response)
}

// =============================
// ✏️ Update question (destructive, no versioning)
// =============================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		log.Println("[ERROR] loading question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}

	if body.Question != nil {
		question.QuestionText = *body.Question
	}
	if body.Options != nil {
		question.QuestionOptions = body.Options
	}
	if body.CorrectOption != nil {
		question.QuestionCorrectOption = *body.CorrectOption
	}
	if question.QuestionCorrectOption >= len(question.QuestionOptions) {
		return helper.JsonError(c, fiber.StatusBadRequest, "correct_option must reference one of the options")
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		log.Println("[ERROR] updating question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.JsonUpdated(c, "Question updated", dto.ToQuestionDTO(question))
}

// =============================
// ❌ Delete question
// =============================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.QuestionModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] deleting question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}

	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"id": id})
}
