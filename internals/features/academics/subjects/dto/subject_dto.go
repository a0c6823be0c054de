package dto

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

type SubjectDTO struct {
	Name   string   `json:"name"`
	Tutors []string `json:"tutors,omitempty"`
}
