package model

import (
	"time"
)

type StudentModel struct {
	StudentDNI      string `gorm:"column:dni;primaryKey" json:"dni"`
	StudentNickname string `gorm:"column:nickname" json:"nickname"`
	StudentSubject  string `gorm:"column:subject;not null" json:"subject"`
	StudentTutor    string `gorm:"column:tutor" json:"tutor"`

	StudentCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	StudentUpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
