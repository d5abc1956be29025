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

type ProgressionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressionController(db *gorm.DB, cfg *config.Config) *ProgressionController {
	return &ProgressionController{DB: db, Cfg: cfg}
}

// GetProgression godoc
// @Summary Get current progression
// @Description Returns the adaptive daily target, mode, deficit and projections plus streak data
// @Tags progression
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progression [get]
func (pc *ProgressionController) GetProgression(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	_, history, err := loadHistory(pc.DB, userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	now := progression.DateOf(time.Now())
	total := sumCounts(history)
	result := progression.Default.Calculate(total, history, now)
	streak := progression.CalculateStreak(history, now)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"progression":   result,
		"streak":        streak,
		"mode_message":  progression.ModeDescription(result.Mode),
		"encouragement": progression.EncouragementMessage(result.Mode, result.Deficit, result.PercentComplete),
	})
}

// GetProgressionHistory godoc
// @Summary Get progression snapshot history
// @Description Returns the nightly progression snapshots for charting target history
// @Tags progression
// @Produce json
// @Param days query int false "Limit to the last N days" default(30)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progression/history [get]
func (pc *ProgressionController) GetProgressionHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}
	since := progression.DateOf(time.Now()).AddDays(-(days - 1)).String()

	var snapshots []models.ProgressionSnapshot
	pc.DB.Where("user_id = ? AND snapshot_date >= ?", userID, since).
		Order("snapshot_date ASC").
		Find(&snapshots)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"snapshots": snapshots,
		"days":      days,
	})
}

// CreateSnapshot godoc
// @Summary Record a progression snapshot for today
// @Description Computes the current progression and stores it as today's snapshot (idempotent per day)
// @Tags progression
// @Produce json
// @Success 200 {object} models.ProgressionSnapshot
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progression/snapshot [post]
func (pc *ProgressionController) CreateSnapshot(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	snapshot, err := SnapshotProgression(pc.DB, userID, progression.DateOf(time.Now()))
	if err != nil {
		return utils.InternalServerError(c, "Could not create snapshot")
	}

	return utils.Success(c, fiber.StatusOK, snapshot)
}

// SnapshotProgression computes a user's progression as of now and upserts it
// as that day's snapshot row. Shared by the snapshot endpoint and the nightly
// scheduler job.
func SnapshotProgression(db *gorm.DB, userID uint, now progression.Date) (*models.ProgressionSnapshot, error) {
	_, history, err := loadHistory(db, userID)
	if err != nil {
		return nil, err
	}

	total := sumCounts(history)
	result := progression.Default.Calculate(total, history, now)

	snapshot := models.ProgressionSnapshot{
		UserID:          userID,
		SnapshotDate:    now.String(),
		Mode:            string(result.Mode),
		DailyTarget:     result.DailyTarget,
		CurrentTotal:    result.CurrentTotal,
		ExpectedTotal:   result.ExpectedTotal,
		Deficit:         result.Deficit,
		SevenDayAverage: result.SevenDayAverage,
	}

	err = db.Where(models.ProgressionSnapshot{UserID: userID, SnapshotDate: now.String()}).
		Assign(snapshot).
		FirstOrCreate(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
