package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialearning_backend/internals/features/academics/questions/dto"
	"socialearning_backend/internals/features/academics/questions/model"
	helper "socialearning_backend/internals/helpers"
)

type UserQuestionController struct {
	DB *gorm.DB
}

func NewUserQuestionController(db *gorm.DB) *UserQuestionController {
	return &UserQuestionController{DB: db}
}

// GET /api/u/questions?subject=&module=
// Student view of the module quiz. A missing or empty question set is a
// normal (empty) result, never an error; the client disables mission 3
// until a tutor authors something.
func (ctrl *UserQuestionController) GetQuestionsForMission(c *fiber.Ctx) error {
	subject := c.Query("subject")
	moduleStr := c.Query("module")
	if subject == "" || moduleStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject and module query parameters are required")
	}
	module, err := strconv.Atoi(moduleStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module must be a number")
	}

	var questions []model.QuestionModel
	err = ctrl.DB.
		Where("subject = ? AND module = ?", subject, module).
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		log.Println("[ERROR] loading questions:", err)
		// Degrade to an empty list; the student flow must not crash on a
		// persistence failure.
		return helper.JsonList(c, "", []dto.StudentQuestionDTO{})
	}

	response := make([]dto.StudentQuestionDTO, 0, len(questions))
	for _, q := range questions {
		response = append(response, dto.ToStudentQuestionDTO(q))
	}
	return helper.JsonList(c, "", response)
}
