package routes

import (
	"pushup365/backend/config"
	"pushup365/backend/controllers"
	"pushup365/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Pushup entry routes
	entriesController := controllers.NewEntriesController(db, cfg)
	pushups := app.Group("/api/pushups", authMiddleware)
	pushups.Post("/", entriesController.AddPushups)
	pushups.Get("/today", entriesController.GetToday)
	pushups.Get("/history", entriesController.GetHistory)
	pushups.Get("/stats", entriesController.GetStats)

	// Progression routes
	progressionController := controllers.NewProgressionController(db, cfg)
	progressionRoutes := app.Group("/api/progression", authMiddleware)
	progressionRoutes.Get("/", progressionController.GetProgression)
	progressionRoutes.Get("/history", progressionController.GetProgressionHistory)
	progressionRoutes.Post("/snapshot", progressionController.CreateSnapshot)

	// Achievement routes
	achievementsController := controllers.NewAchievementsController(db, cfg)
	achievementRoutes := app.Group("/api/achievements", authMiddleware)
	achievementRoutes.Get("/", achievementsController.GetAchievements)
	achievementRoutes.Post("/check", achievementsController.CheckAchievements)

	// Leaderboard
	leaderboardController := controllers.NewLeaderboardController(db, cfg)
	app.Get("/api/leaderboard", authMiddleware, leaderboardController.GetLeaderboard)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/users", adminController.GetUsers)
	admin.Post("/invitations", adminController.CreateInvitation)
	admin.Get("/export", adminController.ExportReport)
}
