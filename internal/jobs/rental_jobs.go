package jobs

import (
	"context"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/utils"
)

const jobTimeout = 5 * time.Minute

// ReportOverdueRentals logs every rental whose paid coverage ended before today.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if _, err := jr.ReportOverdue(ctx); err != nil {
			logger.Error("Failed to report overdue rentals", "error", err)
		}
	})
}

// ReportOverdue returns and logs the rentals overdue as of today.
func (jr *JobRunner) ReportOverdue(ctx context.Context) ([]domain.OverdueRental, error) {
	overdue, err := jr.rentals.ListOverdue(ctx, jr.today())
	if err != nil {
		return nil, err
	}

	for _, o := range overdue {
		logger.Debug("Rental overdue",
			"rental_id", o.RentalID,
			"user_id", o.UserID,
			"room", o.RoomName,
			"paid_until", o.PaidUntil.Format(utils.DateLayout))
	}
	logger.Info("Overdue rentals found", "count", len(overdue))
	return overdue, nil
}

// SendOverdueReminders emails each renter whose rent is overdue.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if _, err := jr.SendReminders(ctx); err != nil {
			logger.Error("Failed to send overdue reminders", "error", err)
		}
	})
}

// SendReminders sends one reminder per overdue rental and returns how many
// were delivered. A failed email is logged and skipped.
func (jr *JobRunner) SendReminders(ctx context.Context) (int, error) {
	if jr.email == nil {
		logger.Warn("Email service not configured, skipping overdue reminders")
		return 0, nil
	}

	overdue, err := jr.rentals.ListOverdue(ctx, jr.today())
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range overdue {
		o := &overdue[i]
		if o.UserEmail == "" {
			continue
		}
		if err := jr.email.SendOverdueReminder(ctx, o); err != nil {
			logger.Error("Failed to send overdue reminder email",
				"rental_id", o.RentalID,
				"user_id", o.UserID,
				"email", o.UserEmail,
				"error", err)
			continue
		}
		count++
		logger.Debug("Sent overdue reminder", "rental_id", o.RentalID, "user_id", o.UserID)
	}

	logger.Info("Overdue reminders sent", "count", count)
	return count, nil
}
