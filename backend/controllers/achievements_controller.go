package controllers

import (
	"time"

	"pushup365/backend/achievements"
	"pushup365/backend/config"
	"pushup365/backend/models"
	"pushup365/backend/progression"
	"pushup365/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AchievementsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAchievementsController(db *gorm.DB, cfg *config.Config) *AchievementsController {
	return &AchievementsController{DB: db, Cfg: cfg}
}

// GetAchievements godoc
// @Summary Get all achievements with progress
// @Description Returns the full catalog annotated with whether and when the user earned each one
// @Tags achievements
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements [get]
func (ach *AchievementsController) GetAchievements(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ach.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var earned []models.UserAchievement
	ach.DB.Where("user_id = ?", userID).Find(&earned)

	earnedAt := make(map[string]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementKey] = ua.EarnedAt
	}

	type achievementWithProgress struct {
		achievements.Achievement
		Earned   bool       `json:"earned"`
		EarnedAt *time.Time `json:"earned_at,omitempty"`
	}

	list := make([]achievementWithProgress, 0, len(achievements.Catalog))
	for _, a := range achievements.Catalog {
		item := achievementWithProgress{Achievement: a}
		if at, ok := earnedAt[a.Key]; ok {
			item.Earned = true
			item.EarnedAt = &at
		}
		list = append(list, item)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"achievements": list,
		"earned_count": len(earned),
		"total_count":  len(achievements.Catalog),
	})
}

// CheckAchievements godoc
// @Summary Evaluate and award achievements
// @Description Recomputes the qualifying set from the full history and awards anything not already earned
// @Tags achievements
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements/check [post]
func (ach *AchievementsController) CheckAchievements(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ach.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	_, history, err := loadHistory(ach.DB, userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	today := progression.DateOf(time.Now())
	qualifying := achievements.Evaluate(history, sumCounts(history), today)

	newlyUnlocked := make([]achievements.Achievement, 0)
	for _, key := range qualifying {
		granted, err := awardIfNew(ach.DB, userID, key)
		if err != nil {
			return utils.InternalServerError(c, "Could not award achievement")
		}
		if granted {
			if a, ok := achievements.ByKey(key); ok {
				newlyUnlocked = append(newlyUnlocked, a)
			}
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"newly_unlocked": newlyUnlocked,
	})
}

// awardIfNew grants an achievement unless the user already holds it. Returns
// true only when the row was newly created; the unique (user, key) index makes
// a concurrent double-check harmless.
func awardIfNew(db *gorm.DB, userID uint, key string) (bool, error) {
	record := models.UserAchievement{
		UserID:         userID,
		AchievementKey: key,
		EarnedAt:       time.Now(),
	}

	result := db.Where(models.UserAchievement{UserID: userID, AchievementKey: key}).
		FirstOrCreate(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
