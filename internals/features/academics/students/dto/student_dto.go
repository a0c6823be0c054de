package dto

import (
	"fmt"

	"socialearning_backend/internals/features/academics/students/model"
)

// ============================
// Request DTOs
// ============================

// LoginRequest is the student entry point: just an identifier and a
// subject. A student row is created on first login.
type LoginRequest struct {
	DNI      string `json:"dni" validate:"required,numeric,min=7,max=10"`
	Nickname string `json:"nickname" validate:"omitempty,max=40"`
	Subject  string `json:"subject" validate:"required"`
}

// ============================
// Response DTO
// ============================

type StudentDTO struct {
	DNI      string `json:"dni"`
	Nickname string `json:"nickname"`
	Subject  string `json:"subject"`
	Tutor    string `json:"tutor"`
}

func ToStudentDTO(m model.StudentModel) StudentDTO {
	return StudentDTO{
		DNI:      m.StudentDNI,
		Nickname: m.StudentNickname,
		Subject:  m.StudentSubject,
		Tutor:    m.StudentTutor,
	}
}

// DefaultNickname mirrors the historical fallback for students who never
// picked one: "Estudiante" plus the dni tail.
func DefaultNickname(dni string) string {
	tail := dni
	if len(dni) > 4 {
		tail = dni[len(dni)-4:]
	}
	return fmt.Sprintf("Estudiante%s", tail)
}
