package controllers

import (
	"fmt"
	"time"

	"pushup365/backend/config"
	"pushup365/backend/models"
	"pushup365/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

// GetUsers godoc
// @Summary List all users
// @Description Returns every registered user with lifetime totals
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (adm *AdminController) GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := adm.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	type userSummary struct {
		ID          uint      `json:"id"`
		Username    string    `json:"username"`
		Email       string    `json:"email"`
		DisplayName string    `json:"display_name"`
		Role        string    `json:"role"`
		CreatedAt   time.Time `json:"created_at"`
		TotalCount  int64     `json:"total_count"`
		DaysActive  int64     `json:"days_active"`
	}

	summaries := make([]userSummary, 0, len(users))
	for _, user := range users {
		var total, days int64
		adm.DB.Model(&models.PushupEntry{}).
			Where("user_id = ?", user.ID).
			Select("COALESCE(SUM(count), 0)").
			Scan(&total)
		adm.DB.Model(&models.PushupEntry{}).
			Where("user_id = ?", user.ID).
			Count(&days)

		summaries = append(summaries, userSummary{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        user.Role,
			CreatedAt:   user.CreatedAt,
			TotalCount:  total,
			DaysActive:  days,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"users": summaries,
	})
}

type CreateInvitationInput struct {
	Email     string `json:"email" validate:"omitempty,email"`
	ExpiresIn int    `json:"expires_in_days" validate:"omitempty,gt=0"`
}

// CreateInvitation godoc
// @Summary Create an invitation token
// @Description Issues a single-use invite token, optionally bound to an email and an expiry
// @Tags admin
// @Accept json
// @Produce json
// @Param input body CreateInvitationInput true "Invitation parameters"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/invitations [post]
func (adm *AdminController) CreateInvitation(c *fiber.Ctx) error {
	adminID, err := utils.ExtractUserIDFromToken(c, adm.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateInvitationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	invitation := models.Invitation{
		Token:     uuid.NewString(),
		Email:     input.Email,
		InvitedBy: adminID,
	}
	if input.ExpiresIn > 0 {
		invitation.ExpiresAt = time.Now().AddDate(0, 0, input.ExpiresIn)
	}

	if err := adm.DB.Create(&invitation).Error; err != nil {
		return utils.InternalServerError(c, "Could not create invitation")
	}

	return utils.Created(c, fiber.Map{
		"token":      invitation.Token,
		"email":      invitation.Email,
		"expires_at": invitation.ExpiresAt,
	})
}

// ExportReport godoc
// @Summary Export the challenge report
// @Description Builds an .xlsx workbook with the current leaderboard standings
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/export [get]
func (adm *AdminController) ExportReport(c *fiber.Ctx) error {
	board, err := BuildLeaderboard(adm.DB)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	f := excelize.NewFile()
	sheet := "Leaderboard"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Rank", "Name", "Total", "Today", "Week", "Month", "Streak", "Days Active"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range board {
		values := []interface{}{
			row + 1,
			entry.DisplayName,
			entry.TotalPushups,
			entry.TodayPushups,
			entry.WeekPushups,
			entry.MonthPushups,
			entry.CurrentStreak,
			entry.DaysActive,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.InternalServerError(c, "Could not build report")
	}

	filename := fmt.Sprintf("pushup365-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
