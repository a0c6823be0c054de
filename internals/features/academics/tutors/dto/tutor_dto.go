package dto

// ============================
// Request DTOs
// ============================

type TutorLoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateTutorRequest struct {
	Name     string   `json:"name" validate:"required,max=60"`
	Password string   `json:"password" validate:"required,min=8"`
	Subjects []string `json:"subjects" validate:"omitempty,dive,required"`
}

type AssignmentRequest struct {
	TutorName string `json:"tutor_name" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
}

// ============================
// Response DTOs
// ============================

type TutorDTO struct {
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
}

type TutorLoginResponse struct {
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
