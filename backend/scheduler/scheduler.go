package scheduler

import (
	"log"
	"time"

	"pushup365/backend/controllers"
	"pushup365/backend/models"
	"pushup365/backend/progression"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// Scheduler runs the recurring background jobs of the challenge.
type Scheduler struct {
	scheduler *gocron.Scheduler
	db        *gorm.DB
	logger    *log.Logger
}

// New creates a scheduler for the given database.
func New(db *gorm.DB, logger *log.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		db:        db,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks without blocking.
func (s *Scheduler) Start() {
	// Nightly snapshot shortly after midnight so the dashboard can chart how
	// targets moved over the challenge.
	s.scheduler.Every(1).Day().At("00:05").Do(s.snapshotAllUsers)

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// snapshotAllUsers records a progression snapshot for every user that has
// logged at least one entry.
func (s *Scheduler) snapshotAllUsers() {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		s.logger.Printf("snapshot job: could not list users: %v", err)
		return
	}

	now := progression.DateOf(time.Now())
	snapshotted := 0
	for _, user := range users {
		var entries int64
		s.db.Model(&models.PushupEntry{}).Where("user_id = ?", user.ID).Count(&entries)
		if entries == 0 {
			continue
		}

		if _, err := controllers.SnapshotProgression(s.db, user.ID, now); err != nil {
			s.logger.Printf("snapshot job: user %d: %v", user.ID, err)
			continue
		}
		snapshotted++
	}

	s.logger.Printf("snapshot job: recorded %d progression snapshots for %s", snapshotted, now)
}
