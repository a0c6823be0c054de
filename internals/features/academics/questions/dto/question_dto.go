package dto

import (
	"socialearning_backend/internals/features/academics/questions/model"
)

// ============================
// Response DTOs
// ============================

// QuestionDTO is the tutor-facing view, correct option included.
type QuestionDTO struct {
	ID            string   `json:"id"`
	Subject       string   `json:"subject"`
	Module        int      `json:"module"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// StudentQuestionDTO is what a student sees while answering mission 3:
// the correct option index never leaves the server.
type StudentQuestionDTO struct {
	ID       string   `json:"id"`
	Module   int      `json:"module"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// ============================
// Request DTOs
// ============================

type CreateQuestionRequest struct {
	Subject       string   `json:"subject" validate:"required"`
	Module        int      `json:"module" validate:"required,min=1,max=4"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,max=6,dive,required"`
	CorrectOption int      `json:"correct_option" validate:"min=0"`
}

type UpdateQuestionRequest struct {
	Question      *string  `json:"question,omitempty" validate:"omitempty,min=1"`
	Options       []string `json:"options,omitempty" validate:"omitempty,min=2,max=6,dive,required"`
	CorrectOption *int     `json:"correct_option,omitempty" validate:"omitempty,min=0"`
}

// ============================
// Converters
// ============================

func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		ID:            m.QuestionID,
		Subject:       m.QuestionSubject,
		Module:        m.QuestionModule,
		Question:      m.QuestionText,
		Options:       m.QuestionOptions,
		CorrectOption: m.QuestionCorrectOption,
	}
}

func ToStudentQuestionDTO(m model.QuestionModel) StudentQuestionDTO {
	return StudentQuestionDTO{
		ID:       m.QuestionID,
		Module:   m.QuestionModule,
		Question: m.QuestionText,
		Options:  m.QuestionOptions,
	}
}
