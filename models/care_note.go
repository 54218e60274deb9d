package models

import "gorm.io/gorm"

type CareNote struct {
	gorm.Model
	ElderID  uint   `gorm:"index;not null"`
	GroupID  uint   `gorm:"index;not null"`
	AuthorID uint   `gorm:"index"`
	Category string `gorm:"size:30"` // "general" | "health" | "behavior" | "appointment"
	Body     string `gorm:"type:text;not null"`
}
