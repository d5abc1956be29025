package models

import "gorm.io/gorm"

// PushupEntry is one user-day record. At most one row per user per date;
// logging again on the same date accumulates into the existing row. CreatedAt
// doubles as the log timestamp for the time-of-day achievements.
type PushupEntry struct {
	gorm.Model
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_entry_date"`
	EntryDate string `gorm:"not null;uniqueIndex:idx_user_entry_date"` // "2006-01-02"
	Count     int    `gorm:"not null;check:count >= 0"`
	Notes     string
}

// UserStats is the aggregate block returned by the stats endpoint.
type UserStats struct {
	TotalPushups  int     `json:"total_pushups"`
	TodayPushups  int     `json:"today_pushups"`
	WeekPushups   int     `json:"week_pushups"`
	MonthPushups  int     `json:"month_pushups"`
	BestDay       int     `json:"best_day"`
	DaysActive    int     `json:"days_active"`
	DailyAverage  float64 `json:"daily_average"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
}

// LeaderboardEntry is one row of the challenge leaderboard.
type LeaderboardEntry struct {
	UserID        uint   `json:"user_id"`
	DisplayName   string `json:"display_name"`
	TotalPushups  int    `json:"total_pushups"`
	TodayPushups  int    `json:"today_pushups"`
	WeekPushups   int    `json:"week_pushups"`
	MonthPushups  int    `json:"month_pushups"`
	CurrentStreak int    `json:"current_streak"`
	DaysActive    int    `json:"days_active"`
}
