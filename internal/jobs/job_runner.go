package jobs

import (
	"time"

	"roomrent-backend/internal/config"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/repository"
	"roomrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentals repository.RentalRepository
	email   service.EmailService
	config  *config.Config
	now     func() time.Time
}

// NewJobRunner creates a new job runner. email may be nil, in which case
// reminders are skipped.
func NewJobRunner(rentals repository.RentalRepository, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentals: rentals,
		email:   email,
		config:  cfg,
		now:     time.Now,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// today is the current UTC date at midnight.
func (jr *JobRunner) today() time.Time {
	y, m, d := jr.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportOverdueRentals()
	jr.SendOverdueReminders()
}
