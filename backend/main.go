package main

import (
	"log"

	"pushup365/backend/config"
	"pushup365/backend/middleware"
	"pushup365/backend/routes"
	"pushup365/backend/scheduler"
	"pushup365/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Seed the achievement catalog
	if err := utils.SeedAchievements(db); err != nil {
		log.Fatalf("Error seeding achievements: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start the nightly snapshot scheduler
	jobs := scheduler.New(db, logger)
	jobs.Start()
	defer jobs.Stop()

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
