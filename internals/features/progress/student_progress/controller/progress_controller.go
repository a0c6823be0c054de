package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionModel "socialearning_backend/internals/features/academics/questions/model"
	studentModel "socialearning_backend/internals/features/academics/students/model"
	"socialearning_backend/internals/features/progress/engine"
	"socialearning_backend/internals/features/progress/student_progress/dto"
	"socialearning_backend/internals/features/progress/student_progress/service"
	helper "socialearning_backend/internals/helpers"
)

var validateProgress = validator.New()

// Student-facing motivational copy, mirrored from the portal UI.
const (
	msgBlocked   = "¡Gran trabajo! Seguiremos intentándolo en la próxima clase. Tu progreso se mantiene guardado."
	msgMission   = "¡Misión completada! +25 puntos ganados."
	msgModule    = "¡Excelente trabajo! Has completado el módulo."
	msgRegular   = "¡REGULARIZASTE LA MATERIA! Felicitaciones por tu dedicación y esfuerzo."
	msgKeepGoing = "Respuesta registrada."
)

type StudentProgressController struct {
	DB *gorm.DB
}

func NewStudentProgressController(db *gorm.DB) *StudentProgressController {
	return &StudentProgressController{DB: db}
}

// GET /api/u/students/:dni/board?subject=
// Loads the persisted records, applies the session-reset policy once,
// and returns the fully derived board.
func (ctrl *StudentProgressController) GetBoard(c *fiber.Ctx) error {
	dni := c.Params("dni")
	subject := c.Query("subject")
	if subject == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject query parameter is required")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "dni = ?", dni).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] loading student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	board, err := ctrl.assembleBoard(student, subject)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load progress")
	}
	return helper.JsonOK(c, "", board)
}

// POST /api/u/students/:dni/answers
// Records the outcome of the current module's mission and persists the
// result immediately (last write wins).
func (ctrl *StudentProgressController) AnswerMission(c *fiber.Ctx) error {
	dni := c.Params("dni")

	var body dto.AnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProgress.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "dni = ?", dni).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] loading student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	now := time.Now()
	records, err := service.LoadRecords(ctrl.DB, dni, body.Subject)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load progress")
	}
	// The reset must run here too: the first request of a new day can be
	// an answer, not a board load.
	pm, _, err := service.EnsureSessionReset(ctrl.DB, dni, body.Subject, records, now)
	if err != nil {
		log.Println("[ERROR] session reset not persisted:", err)
	}
	pm = service.WithFirstModule(pm)

	module := engine.CurrentModule(pm)
	current := pm[module]

	if current.Blocked {
		return helper.JsonError(c, fiber.StatusConflict, "Module is blocked until the next class")
	}
	if got := engine.CurrentMission(current); got != body.Mission {
		return helper.JsonError(c, fiber.StatusConflict, "Mission is not the current one")
	}

	passed, err := ctrl.gradeAnswer(c, body, module)
	if err != nil {
		return err // already a response
	}

	updated, err := engine.Answer(current, body.Mission, passed)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	pm[module] = updated

	if err := service.SaveModule(ctrl.DB, dni, body.Subject, module, updated, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save progress")
	}

	celebration := engine.CelebrationFor(updated, module, pm, passed)
	resp := dto.AnswerResponseDTO{
		Board:       ctrl.boardFromMap(student, body.Subject, pm, &now),
		Celebration: celebration.String(),
	}
	switch {
	case !passed:
		resp.Outcome = "failed"
		resp.Message = msgBlocked
	case celebration == engine.CelebrationRegularization:
		resp.Outcome = "passed"
		resp.Message = msgRegular
		resp.BonusPoints = engine.ModuleBonusPoints
	case celebration == engine.CelebrationModule:
		resp.Outcome = "passed"
		resp.Message = msgModule
		resp.BonusPoints = engine.ModuleBonusPoints
	case celebration == engine.CelebrationMission:
		resp.Outcome = "passed"
		resp.Message = msgMission
	default:
		resp.Outcome = "passed"
		resp.Message = msgKeepGoing
	}

	return helper.JsonOK(c, "", resp)
}

// gradeAnswer turns the request into a pass/fail outcome. Yes/no
// missions carry it directly; mission 3 is graded server-side against
// the question's stable correct-option index.
func (ctrl *StudentProgressController) gradeAnswer(c *fiber.Ctx, body dto.AnswerRequest, module int) (bool, error) {
	if body.Mission != 3 {
		if body.Answer == nil {
			return false, helper.JsonError(c, fiber.StatusBadRequest, "answer is required for this mission")
		}
		return *body.Answer, nil
	}

	if body.QuestionID == nil || body.SelectedOption == nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "question_id and selected_option are required for mission 3")
	}

	var question questionModel.QuestionModel
	err := ctrl.DB.First(&question, "id = ? AND subject = ?", *body.QuestionID, body.Subject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		log.Println("[ERROR] loading question:", err)
		return false, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}
	if question.QuestionModule != module {
		return false, helper.JsonError(c, fiber.StatusConflict, "Question does not belong to the current module")
	}
	if *body.SelectedOption < 0 || *body.SelectedOption >= len(question.QuestionOptions) {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "selected_option is out of range")
	}

	return *body.SelectedOption == question.QuestionCorrectOption, nil
}

// BoardForLogin builds the board for a freshly upserted student during
// login. Same derivation as GetBoard, exposed for the students feature.
func (ctrl *StudentProgressController) BoardForLogin(student studentModel.StudentModel) (dto.BoardDTO, error) {
	return ctrl.assembleBoard(student, student.StudentSubject)
}

func (ctrl *StudentProgressController) assembleBoard(student studentModel.StudentModel, subject string) (dto.BoardDTO, error) {
	now := time.Now()
	records, err := service.LoadRecords(ctrl.DB, student.StudentDNI, subject)
	if err != nil {
		return dto.BoardDTO{}, err
	}
	pm, last, err := service.EnsureSessionReset(ctrl.DB, student.StudentDNI, subject, records, now)
	if err != nil {
		// A failed reset write degrades to the unreset view; never fatal
		// to the student flow.
		log.Println("[ERROR] session reset not persisted:", err)
	}
	pm = service.WithFirstModule(pm)
	return ctrl.boardFromMap(student, subject, pm, last), nil
}

func (ctrl *StudentProgressController) boardFromMap(student studentModel.StudentModel, subject string, pm engine.ProgressMap, last *time.Time) dto.BoardDTO {
	student.StudentSubject = subject
	return dto.ToBoardDTO(student, pm, last)
}
