package model

import (
	"time"

	"socialearning_backend/internals/features/progress/engine"
)

// StudentProgressModel is one module record of one student in one
// subject. Missions are stored as nullable booleans (the historical
// Supabase schema); the engine works on the tri-state view instead.
type StudentProgressModel struct {
	StudentProgressID      uint   `gorm:"column:id;primaryKey" json:"id"`
	StudentProgressDNI     string `gorm:"column:dni;not null;uniqueIndex:uq_student_progress" json:"dni"`
	StudentProgressSubject string `gorm:"column:subject;not null;uniqueIndex:uq_student_progress" json:"subject"`
	StudentProgressModule  int    `gorm:"column:module;not null;uniqueIndex:uq_student_progress" json:"module"`

	StudentProgressM1 *bool `gorm:"column:m1" json:"m1"`
	StudentProgressM2 *bool `gorm:"column:m2" json:"m2"`
	StudentProgressM3 *bool `gorm:"column:m3" json:"m3"`
	StudentProgressM4 *bool `gorm:"column:m4" json:"m4"`

	// Denormalized 25-per-passed-mission total, rewritten on every save
	// so the tutor board can read it without recomputing.
	StudentProgressPoints int `gorm:"column:points;not null;default:0" json:"points"`

	StudentProgressBlocked         bool       `gorm:"column:blocked_until_next_class;not null;default:false" json:"blocked_until_next_class"`
	StudentProgressLastSessionDate *time.Time `gorm:"column:last_session_date" json:"last_session_date"`

	StudentProgressUpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentProgressModel) TableName() string {
	return "student_progress"
}

// ToEngine lifts the stored nullable booleans into the engine tri-state.
func (m StudentProgressModel) ToEngine() engine.ModuleProgress {
	return engine.ModuleProgress{
		Missions: [engine.MissionCount]engine.MissionState{
			engine.StateFromBool(m.StudentProgressM1),
			engine.StateFromBool(m.StudentProgressM2),
			engine.StateFromBool(m.StudentProgressM3),
			engine.StateFromBool(m.StudentProgressM4),
		},
		Blocked: m.StudentProgressBlocked,
	}
}

// ApplyEngine writes an engine module state back onto the record,
// refreshing the denormalized points column as well.
func (m *StudentProgressModel) ApplyEngine(mp engine.ModuleProgress) {
	m.StudentProgressM1 = mp.Mission(1).Bool()
	m.StudentProgressM2 = mp.Mission(2).Bool()
	m.StudentProgressM3 = mp.Mission(3).Bool()
	m.StudentProgressM4 = mp.Mission(4).Bool()
	m.StudentProgressBlocked = mp.Blocked
	m.StudentProgressPoints = engine.ModulePoints(mp)
}
