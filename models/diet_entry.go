package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DietEntry is one logged meal or snack for an elder.
type DietEntry struct {
	gorm.Model
	ElderID   uint      `gorm:"index;not null"`
	GroupID   uint      `gorm:"index;not null"`
	Meal      string    `gorm:"size:20;not null"` // "breakfast" | "lunch" | "dinner" | "snack"
	Items     string    `gorm:"type:text"`        // comma-joined food items
	Notes     string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"index;not null"`
}

// ItemList normalizes the stored comma-joined items into a slice.
func (e *DietEntry) ItemList() []string {
	if strings.TrimSpace(e.Items) == "" {
		return nil
	}
	parts := strings.Split(e.Items, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if it := strings.TrimSpace(p); it != "" {
			out = append(out, it)
		}
	}
	return out
}
