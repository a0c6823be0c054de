package dto

import (
	"time"

	"socialearning_backend/internals/features/academics/students/model"
	"socialearning_backend/internals/features/progress/engine"
)

// ============================
// Response DTOs
// ============================

// ModuleStateDTO is one module row of the student board. Mission values
// are the tri-state names ("unanswered" / "passed" / "failed").
type ModuleStateDTO struct {
	Module         int    `json:"module"`
	M1             string `json:"m1"`
	M2             string `json:"m2"`
	M3             string `json:"m3"`
	M4             string `json:"m4"`
	Blocked        bool   `json:"blocked_until_next_class"`
	CurrentMission int    `json:"current_mission"`
	Points         int    `json:"points"`
}

// BoardDTO is everything the student dashboard renders: identity plus
// the derived progression state. All derived fields come from the
// engine on every load; nothing here is trusted from storage.
type BoardDTO struct {
	DNI      string `json:"dni"`
	Nickname string `json:"nickname"`
	Subject  string `json:"subject"`
	Tutor    string `json:"tutor"`

	CurrentModule  int  `json:"current_module"`
	CurrentMission int  `json:"current_mission"`
	Blocked        bool `json:"blocked_until_next_class"`
	TotalPoints    int  `json:"total_points"`
	Regularized    bool `json:"regularized"`

	Modules         []ModuleStateDTO `json:"modules"`
	LastSessionDate *time.Time       `json:"last_session_date,omitempty"`
}

// AnswerResponseDTO is returned after a mission outcome is recorded.
type AnswerResponseDTO struct {
	Board       BoardDTO `json:"board"`
	Outcome     string   `json:"outcome"` // "passed" | "failed"
	Celebration string   `json:"celebration"`
	// BonusPoints carries the celebratory "+100" narrative for module
	// completion. It is display text, already excluded from total_points.
	BonusPoints int    `json:"bonus_points,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ============================
// Request DTOs
// ============================

// AnswerRequest records the outcome of the current module's mission.
// Missions 1, 2 and 4 carry the yes/no answer directly; mission 3 sends
// the chosen option of a question instead and the server grades it.
type AnswerRequest struct {
	Subject string `json:"subject" validate:"required"`
	Mission int    `json:"mission" validate:"required,min=1,max=4"`

	Answer *bool `json:"answer,omitempty" validate:"required_without=SelectedOption"`

	QuestionID     *string `json:"question_id,omitempty" validate:"omitempty,uuid"`
	SelectedOption *int    `json:"selected_option,omitempty" validate:"omitempty,min=0"`
}

// ============================
// Converters
// ============================

func ToModuleStateDTO(module int, mp engine.ModuleProgress) ModuleStateDTO {
	return ModuleStateDTO{
		Module:         module,
		M1:             mp.Mission(1).String(),
		M2:             mp.Mission(2).String(),
		M3:             mp.Mission(3).String(),
		M4:             mp.Mission(4).String(),
		Blocked:        mp.Blocked,
		CurrentMission: engine.CurrentMission(mp),
		Points:         engine.ModulePoints(mp),
	}
}

func ToBoardDTO(student model.StudentModel, pm engine.ProgressMap, lastSession *time.Time) BoardDTO {
	currentModule := engine.CurrentModule(pm)
	current := pm[currentModule]

	modules := make([]ModuleStateDTO, 0, len(pm))
	for module := 1; module <= engine.ModuleCount; module++ {
		if mp, ok := pm[module]; ok {
			modules = append(modules, ToModuleStateDTO(module, mp))
		}
	}

	return BoardDTO{
		DNI:             student.StudentDNI,
		Nickname:        student.StudentNickname,
		Subject:         student.StudentSubject,
		Tutor:           student.StudentTutor,
		CurrentModule:   currentModule,
		CurrentMission:  engine.CurrentMission(current),
		Blocked:         current.Blocked,
		TotalPoints:     engine.TotalPoints(pm),
		Regularized:     engine.Regularized(pm),
		Modules:         modules,
		LastSessionDate: lastSession,
	}
}
