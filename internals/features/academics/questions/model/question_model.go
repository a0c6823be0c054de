package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionModel is a module quiz question. The correct answer is kept as
// a stable option index, never matched by option text, so editing an
// option after students answered cannot flip correctness.
type QuestionModel struct {
	QuestionID      string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	QuestionSubject string `gorm:"column:subject;not null" json:"subject"`
	QuestionModule  int    `gorm:"column:module;not null" json:"module"`

	QuestionText          string                      `gorm:"column:question;type:text;not null" json:"question"`
	QuestionOptions       datatypes.JSONSlice[string] `gorm:"column:options;type:jsonb;not null" json:"options"`
	QuestionCorrectOption int                         `gorm:"column:correct_option;not null" json:"correct_option"`

	QuestionCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
