package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement mirrors the static catalog so presentation queries can join
// against it. Seeded at startup, read-only afterwards.
type Achievement struct {
	gorm.Model
	Key         string `gorm:"uniqueIndex;not null"`
	Category    string `gorm:"not null"`
	Name        string `gorm:"not null"`
	Description string
	Icon        string
	Requirement int
}

// UserAchievement records an earned achievement. The unique index is what
// makes awarding idempotent: qualifying again never creates a second row.
type UserAchievement struct {
	gorm.Model
	UserID         uint   `gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementKey string `gorm:"not null;uniqueIndex:idx_user_achievement"`
	EarnedAt       time.Time
}
