package models

import (
	"time"

	"gorm.io/gorm"
)

// Conflict types emitted by the schedule checker.
const (
	ConflictFoodRequired     = "food_required"
	ConflictEmptyStomach     = "empty_stomach"
	ConflictAvoidCombination = "avoid_combination"
)

// Conflict review states.
const (
	ConflictStatusActive   = "active"
	ConflictStatusReviewed = "reviewed"
)

// ScheduleConflict is a derived record: a mismatch between a medication's
// documented timing requirement and its actual schedule. Only the checker
// creates these; caregivers may mark them reviewed.
type ScheduleConflict struct {
	gorm.Model
	GroupID uint `gorm:"index;not null"`
	ElderID uint `gorm:"index;not null"`

	MedicationID   uint   `gorm:"index;not null"`
	MedicationName string `gorm:"not null"`

	// Set only for avoid_combination conflicts.
	OtherMedicationID   uint
	OtherMedicationName string

	ConflictType    string `gorm:"size:30;not null"`
	Description     string `gorm:"type:text"`
	CurrentSchedule string
	Conflict        string `gorm:"type:text"`
	FDAGuidance     string `gorm:"type:text"`

	DetectedAt time.Time
	Status     string `gorm:"size:16;default:active"`
}
