package models

import (
	"time"

	"gorm.io/gorm"
)

// CareGroup is the tenant boundary: a family or an agency. Elders,
// medications and diet logs are always scoped to one group.
type CareGroup struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Plan        string `gorm:"size:20;default:trial"` // "trial" | "family" | "agency"
	OwnerUserID uint   `gorm:"index;not null"`
}

type GroupMember struct {
	gorm.Model
	GroupID   uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Role      string `gorm:"size:20;default:caregiver"`
	InvitedBy uint
}

// GroupInvite holds a pending caregiver invitation. The code is mailed out
// and redeemed once.
type GroupInvite struct {
	gorm.Model
	GroupID   uint   `gorm:"index;not null"`
	Email     string `gorm:"index;not null"`
	Code      string `gorm:"uniqueIndex;size:64;not null"`
	Role      string `gorm:"size:20;default:caregiver"`
	InvitedBy uint
	ExpiresAt time.Time
	Accepted  bool
}
