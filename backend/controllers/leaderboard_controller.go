package controllers

import (
	"sort"
	"time"

	"pushup365/backend/config"
	"pushup365/backend/models"
	"pushup365/backend/progression"
	"pushup365/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLeaderboardController(db *gorm.DB, cfg *config.Config) *LeaderboardController {
	return &LeaderboardController{DB: db, Cfg: cfg}
}

// GetLeaderboard godoc
// @Summary Get the challenge leaderboard
// @Description Returns per-user totals for today, this week, this month and overall, plus streaks
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, lc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	entries, err := BuildLeaderboard(lc.DB)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"leaderboard": entries,
	})
}

// BuildLeaderboard aggregates every participant's history into ranked rows,
// sorted by lifetime total. Streaks come from the engine so the grace-period
// rule matches the rest of the app.
func BuildLeaderboard(db *gorm.DB) ([]models.LeaderboardEntry, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}

	today := progression.DateOf(time.Now())
	weekStart := today.AddDays(-6)
	monthStart := today.AddDays(-29)

	board := make([]models.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		_, history, err := loadHistory(db, user.ID)
		if err != nil {
			return nil, err
		}
		if len(history) == 0 {
			continue
		}

		row := models.LeaderboardEntry{
			UserID:      user.ID,
			DisplayName: displayName(user),
			DaysActive:  len(history),
		}
		for _, e := range history {
			row.TotalPushups += e.Count
			if e.Date.Equal(today) {
				row.TodayPushups = e.Count
			}
			if !e.Date.Before(weekStart) {
				row.WeekPushups += e.Count
			}
			if !e.Date.Before(monthStart) {
				row.MonthPushups += e.Count
			}
		}
		row.CurrentStreak = progression.CalculateStreak(history, today).CurrentStreak

		board = append(board, row)
	}

	sort.Slice(board, func(i, j int) bool {
		return board[i].TotalPushups > board[j].TotalPushups
	})
	return board, nil
}

func displayName(user models.User) string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Username
}
