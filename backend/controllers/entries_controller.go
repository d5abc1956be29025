package controllers

import (
	"strconv"
	"time"

	"pushup365/backend/config"
	"pushup365/backend/models"
	"pushup365/backend/progression"
	"pushup365/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EntriesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEntriesController(db *gorm.DB, cfg *config.Config) *EntriesController {
	return &EntriesController{DB: db, Cfg: cfg}
}

type AddPushupsInput struct {
	Count int    `json:"count" validate:"required,gt=0"`
	Notes string `json:"notes" validate:"max=500"`
}

// loadHistory fetches a user's full entry history sorted by date and converts
// it into engine entries. The row's CreatedAt is carried along as the log
// timestamp for the time-of-day achievements.
func loadHistory(db *gorm.DB, userID uint) ([]models.PushupEntry, []progression.Entry, error) {
	var rows []models.PushupEntry
	err := db.Where("user_id = ?", userID).Order("entry_date ASC").Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	history := make([]progression.Entry, 0, len(rows))
	for _, row := range rows {
		date, err := progression.ParseDate(row.EntryDate)
		if err != nil {
			continue
		}
		history = append(history, progression.Entry{
			Date:     date,
			Count:    row.Count,
			LoggedAt: row.CreatedAt,
		})
	}
	return rows, history, nil
}

func sumCounts(history []progression.Entry) int {
	total := 0
	for _, e := range history {
		total += e.Count
	}
	return total
}

// AddPushups godoc
// @Summary Log pushups for today
// @Description Adds pushups to today's entry; a second log on the same day accumulates into the existing record
// @Tags pushups
// @Accept json
// @Produce json
// @Param input body AddPushupsInput true "Pushup count"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /pushups [post]
func (ec *EntriesController) AddPushups(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input AddPushupsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	today := progression.DateOf(time.Now()).String()

	// Upsert with count accumulation; the unique (user, date) index keeps two
	// near-simultaneous logs from creating duplicate rows.
	var entry models.PushupEntry
	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND entry_date = ?", userID, today).First(&entry)
		if result.Error != nil {
			if result.Error != gorm.ErrRecordNotFound {
				return result.Error
			}
			entry = models.PushupEntry{
				UserID:    userID,
				EntryDate: today,
				Count:     input.Count,
				Notes:     input.Notes,
			}
			return tx.Create(&entry).Error
		}

		entry.Count += input.Count
		if input.Notes != "" {
			entry.Notes = input.Notes
		}
		return tx.Save(&entry).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not save entry")
	}

	var total int64
	ec.DB.Model(&models.PushupEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"entry_date":  entry.EntryDate,
		"today_count": entry.Count,
		"total_count": total,
		"notes":       entry.Notes,
	})
}

// GetToday godoc
// @Summary Get today's pushup count
// @Tags pushups
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /pushups/today [get]
func (ec *EntriesController) GetToday(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	today := progression.DateOf(time.Now()).String()

	var entry models.PushupEntry
	count := 0
	if err := ec.DB.Where("user_id = ? AND entry_date = ?", userID, today).
		First(&entry).Error; err == nil {
		count = entry.Count
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"entry_date": today,
		"count":      count,
	})
}

// GetHistory godoc
// @Summary Get pushup history
// @Description Returns the user's dated entries, most recent first
// @Tags pushups
// @Produce json
// @Param days query int false "Limit to the last N days" default(30)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /pushups/history [get]
func (ec *EntriesController) GetHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}
	since := progression.DateOf(time.Now()).AddDays(-(days - 1)).String()

	var rows []models.PushupEntry
	ec.DB.Where("user_id = ? AND entry_date >= ?", userID, since).
		Order("entry_date DESC").
		Find(&rows)

	type historyEntry struct {
		EntryDate string    `json:"entry_date"`
		Count     int       `json:"count"`
		Notes     string    `json:"notes,omitempty"`
		LoggedAt  time.Time `json:"logged_at"`
	}
	history := make([]historyEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, historyEntry{
			EntryDate: row.EntryDate,
			Count:     row.Count,
			Notes:     row.Notes,
			LoggedAt:  row.CreatedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"entries": history,
		"days":    days,
	})
}

// GetStats godoc
// @Summary Get user pushup statistics
// @Description Returns lifetime totals plus streaks computed from the full history
// @Tags pushups
// @Produce json
// @Success 200 {object} models.UserStats
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /pushups/stats [get]
func (ec *EntriesController) GetStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	_, history, err := loadHistory(ec.DB, userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	today := progression.DateOf(time.Now())
	weekStart := today.AddDays(-6)
	monthStart := today.AddDays(-29)

	stats := models.UserStats{DaysActive: len(history)}
	for _, e := range history {
		stats.TotalPushups += e.Count
		if e.Count > stats.BestDay {
			stats.BestDay = e.Count
		}
		if e.Date.Equal(today) {
			stats.TodayPushups = e.Count
		}
		if !e.Date.Before(weekStart) {
			stats.WeekPushups += e.Count
		}
		if !e.Date.Before(monthStart) {
			stats.MonthPushups += e.Count
		}
	}
	if len(history) > 0 {
		stats.DailyAverage = float64(stats.TotalPushups) / float64(len(history))
	}

	streak := progression.CalculateStreak(history, today)
	stats.CurrentStreak = streak.CurrentStreak
	stats.LongestStreak = streak.LongestStreak

	return utils.Success(c, fiber.StatusOK, stats)
}
