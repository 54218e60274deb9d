package models

import (
	"time"

	"gorm.io/gorm"
)

// Elder is the care recipient. Elders are records, not login users.
type Elder struct {
	gorm.Model
	GroupID   uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	BirthDate *time.Time
	Sex       string `gorm:"size:10"`
	Notes     string `gorm:"type:text"`
}
