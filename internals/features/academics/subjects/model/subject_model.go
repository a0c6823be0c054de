package model

import (
	"time"
)

type SubjectModel struct {
	SubjectName      string    `gorm:"column:name;primaryKey" json:"name"`
	SubjectCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
