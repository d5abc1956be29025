package models

import "gorm.io/gorm"

// ProgressionSnapshot is one nightly record of a user's progression state,
// written by the scheduler so the dashboard can chart target history.
type ProgressionSnapshot struct {
	gorm.Model
	UserID          uint   `gorm:"not null;uniqueIndex:idx_user_snapshot_date"`
	SnapshotDate    string `gorm:"not null;uniqueIndex:idx_user_snapshot_date"` // "2006-01-02"
	Mode            string
	DailyTarget     int
	CurrentTotal    int
	ExpectedTotal   int
	Deficit         int
	SevenDayAverage float64
}
