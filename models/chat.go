package models

import "time"

// ChatSession is one caregiver's health Q&A conversation. Sessions are
// addressed by a client-facing UUID rather than the row id.
type ChatSession struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"uniqueIndex;size:36;not null"`
	UserID    uint   `gorm:"index;not null"`
	GroupID   uint   `gorm:"index"`
	ElderID   uint   `gorm:"index"` // 0 when the chat is not about a specific elder
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"index;size:36;not null"`
	Role      string `gorm:"size:12;not null"` // "user" | "model"
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
}
