package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email       string `gorm:"uniqueIndex;not null"`
    Password    string `gorm:"not null"`
    FullName    string
    PhoneNumber string
    Role        string `gorm:"size:20;default:caregiver"` // "admin" | "caregiver"
    Disabled    bool
}
