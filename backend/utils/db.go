package utils

import (
	"fmt"

	"pushup365/backend/achievements"
	"pushup365/backend/config"
	"pushup365/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Invitation{},
		&models.LoginHistory{},
		&models.PushupEntry{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.ProgressionSnapshot{},
	)
	if err != nil {
		return nil, fmt.Errorf("could not migrate database: %w", err)
	}

	return db, nil
}

// SeedAchievements upserts the static achievement catalog into the database
// so presentation queries can join names and icons. Safe to run on every boot.
func SeedAchievements(db *gorm.DB) error {
	for _, a := range achievements.Catalog {
		record := models.Achievement{
			Key:         a.Key,
			Category:    string(a.Category),
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Requirement: a.Requirement,
		}
		err := db.Where(models.Achievement{Key: a.Key}).
			Assign(record).
			FirstOrCreate(&models.Achievement{}).Error
		if err != nil {
			return fmt.Errorf("could not seed achievement %s: %w", a.Key, err)
		}
	}
	return nil
}
