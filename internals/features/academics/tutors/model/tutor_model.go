package model

import (
	"time"
)

type TutorModel struct {
	TutorName         string    `gorm:"column:name;primaryKey" json:"name"`
	TutorPasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	TutorCreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TutorModel) TableName() string {
	return "tutors"
}

// TutorSubjectModel is the tutor↔subject assignment. Plain set
// membership: no cardinality constraint in either direction.
type TutorSubjectModel struct {
	TutorSubjectID        uint   `gorm:"column:id;primaryKey" json:"id"`
	TutorSubjectTutorName string `gorm:"column:tutor_name;not null;uniqueIndex:uq_tutor_subject" json:"tutor_name"`
	TutorSubjectSubject   string `gorm:"column:subject;not null;uniqueIndex:uq_tutor_subject" json:"subject"`

	TutorSubjectCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TutorSubjectModel) TableName() string {
	return "tutor_subjects"
}
