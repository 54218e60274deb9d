package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Medication is one prescribed drug for an elder.
type Medication struct {
	gorm.Model
	ElderID uint   `gorm:"index;not null"`
	GroupID uint   `gorm:"index;not null"`
	Name    string `gorm:"not null"`
	Dosage  string // e.g. "10mg", "1 tablet"

	FreqType string `gorm:"size:20"` // "daily" | "weekly" | "as_needed"
	Times    string // comma-joined 24h clock times, e.g. "08:00,20:00"

	Instructions string `gorm:"type:text"`
	StartDate    time.Time
	EndDate      *time.Time // nil while the prescription is open-ended
}

// TimeList splits the stored comma-joined schedule into individual
// "HH:MM" strings.
func (m *Medication) TimeList() []string {
	if strings.TrimSpace(m.Times) == "" {
		return nil
	}
	parts := strings.Split(m.Times, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ActiveAt reports whether the prescription is in effect at t.
func (m *Medication) ActiveAt(t time.Time) bool {
	return m.EndDate == nil || m.EndDate.After(t)
}
