package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription mirrors the group's Stripe state. One row per group,
// updated from checkout and webhook events.
type Subscription struct {
	gorm.Model
	GroupID          uint   `gorm:"uniqueIndex;not null"`
	StripeCustomerID string `gorm:"size:64;index"`
	StripeSubID      string `gorm:"size:64;index"`
	PriceID          string `gorm:"size:64"`
	Status           string `gorm:"size:24"` // "trialing" | "active" | "past_due" | "canceled"
	CurrentPeriodEnd time.Time
}
