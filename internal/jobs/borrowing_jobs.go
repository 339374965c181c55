package jobs

import (
	"context"
	"time"

	"bibliothek-backend/internal/loan"
	"bibliothek-backend/internal/logger"
)

// SendDueSoonReminders emails every borrower whose due date falls within the
// configured reminder window. Overdue borrowings are excluded here; they get
// the stronger overdue notice instead.
func (jr *JobRunner) SendDueSoonReminders() {
	jr.runWithRecovery("SendDueSoonReminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()
		windowEnd := now.AddDate(0, 0, jr.config.Loan.ReminderDays)

		borrowings, err := jr.services.Borrowing.ListBorrowings(ctx)
		if err != nil {
			logger.Error("Failed to list borrowings for due-soon reminders", "error", err)
			return
		}

		sent := 0
		for _, b := range borrowings {
			due, err := time.Parse("2006-01-02", b.DueDate)
			if err != nil {
				logger.Warn("Skipping borrowing with unusable due date", "borrowing_id", b.ID, "due_date", b.DueDate)
				continue
			}
			if b.IsOverdue || due.After(windowEnd) {
				continue
			}
			if b.Customer == nil || b.Customer.Email == "" || b.Medium == nil {
				logger.Warn("Skipping due-soon reminder without recipient", "borrowing_id", b.ID)
				continue
			}

			err = jr.services.Email.SendDueSoonReminder(ctx, b.Customer.Email, b.Customer.FullName(), b.Medium.Title, b.DueDate)
			if err != nil {
				logger.Error("Failed to send due-soon reminder",
					"borrowing_id", b.ID,
					"customer_id", b.CustomerID,
					"error", err)
				continue
			}
			sent++
			logger.Debug("Sent due-soon reminder",
				"borrowing_id", b.ID,
				"customer_id", b.CustomerID,
				"medium_id", b.MediumID,
				"due_date", b.DueDate)
		}

		logger.Info("Sent due-soon reminders", "count", sent, "window_days", jr.config.Loan.ReminderDays)
	})
}

// SendOverdueNotices emails every borrower whose due date has passed. The
// overdue state is recomputed against today, not read from storage.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		borrowings, err := jr.services.Borrowing.ListBorrowings(ctx)
		if err != nil {
			logger.Error("Failed to list borrowings for overdue notices", "error", err)
			return
		}

		sent := 0
		for _, b := range borrowings {
			if !loan.IsOverdue(loan.DueDate(b.LendDate, b.DurationDays), now) {
				continue
			}
			if b.Customer == nil || b.Customer.Email == "" || b.Medium == nil {
				logger.Warn("Skipping overdue notice without recipient", "borrowing_id", b.ID)
				continue
			}

			err = jr.services.Email.SendOverdueNotice(ctx, b.Customer.Email, b.Customer.FullName(), b.Medium.Title, b.DueDate)
			if err != nil {
				logger.Error("Failed to send overdue notice",
					"borrowing_id", b.ID,
					"customer_id", b.CustomerID,
					"error", err)
				continue
			}
			sent++
			logger.Debug("Sent overdue notice",
				"borrowing_id", b.ID,
				"customer_id", b.CustomerID,
				"medium_id", b.MediumID,
				"due_date", b.DueDate)
		}

		logger.Info("Sent overdue notices", "count", sent)
	})
}
