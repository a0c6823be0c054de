package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialearning_backend/internals/configs"
	"socialearning_backend/internals/features/academics/tutors/dto"
	"socialearning_backend/internals/features/academics/tutors/model"
	helper "socialearning_backend/internals/helpers"
)

var validateTutorAuth = validator.New()

const accessTokenTTL = 8 * time.Hour

type TutorAuthController struct {
	DB *gorm.DB
}

func NewTutorAuthController(db *gorm.DB) *TutorAuthController {
	return &TutorAuthController{DB: db}
}

// POST /api/a/auth/login
// Per-tutor credential check. While the tutors table is still empty the
// bootstrap password from the environment lets the staff in to create
// the first account.
func (ctrl *TutorAuthController) Login(c *fiber.Ctx) error {
	var body dto.TutorLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTutorAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if configs.JWTSecret == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Tutor panel is not configured")
	}

	var tutor model.TutorModel
	err := ctrl.DB.First(&tutor, "name = ?", body.Name).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !ctrl.bootstrapAllowed(body) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid tutor or password")
		}
		log.Printf("[INFO] bootstrap login accepted for %q (empty tutors table)", body.Name)
	case err != nil:
		log.Println("[ERROR] loading tutor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tutor")
	default:
		if bcrypt.CompareHashAndPassword([]byte(tutor.TutorPasswordHash), []byte(body.Password)) != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid tutor or password")
		}
	}

	token, exp, err := issueTutorToken(body.Name)
	if err != nil {
		log.Println("[ERROR] signing token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.TutorLoginResponse{
		Name:        body.Name,
		AccessToken: token,
		ExpiresIn:   exp,
	})
}

// bootstrapAllowed opens the panel only when no tutor exists yet and the
// shared bootstrap password matches.
func (ctrl *TutorAuthController) bootstrapAllowed(body dto.TutorLoginRequest) bool {
	if configs.TutorBootstrapPassword == "" || body.Password != configs.TutorBootstrapPassword {
		return false
	}
	var count int64
	if err := ctrl.DB.Model(&model.TutorModel{}).Count(&count).Error; err != nil {
		log.Println("[ERROR] counting tutors:", err)
		return false
	}
	return count == 0
}

func issueTutorToken(name string) (string, int64, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  name,
		"role": "tutor",
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(accessTokenTTL.Seconds()), nil
}
