package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"` // user, admin
	DisplayName  string
}

// Invitation is an admin-issued invite token. Registration consumes it.
type Invitation struct {
	gorm.Model
	Token      string `gorm:"uniqueIndex;not null"`
	Email      string
	InvitedBy  uint
	RedeemedBy *uint
	ExpiresAt  time.Time
}

type LoginHistory struct {
	gorm.Model
	UserID    uint `gorm:"index"`
	LoginTime time.Time
}
