// Package loan holds the pure borrowing-lifecycle computations: due dates,
// overdue detection, and the single-extension policy. Nothing here touches
// the database or the network, so the same functions serve the REST
// handlers, the scheduled jobs, and the console views.
package loan

import (
	"time"

	"bibliothek-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// NormalizeDuration applies the defaulting rule: a missing or non-positive
// duration means the initial 14-day loan.
func NormalizeDuration(durationDays int32) int32 {
	if durationDays <= 0 {
		return domain.DefaultDurationDays
	}
	return durationDays
}

// DueDate adds the loan duration in calendar days to the lend date. An
// absent or unparseable lend date yields an empty due date rather than an
// error; callers treat that as "no due date".
func DueDate(lendDate string, durationDays int32) string {
	if lendDate == "" {
		return ""
	}
	start, err := time.Parse(dateLayout, lendDate)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, int(NormalizeDuration(durationDays))).Format(dateLayout)
}

// IsOverdue reports whether the due date strictly precedes now's calendar
// date. An empty or invalid due date is never overdue.
func IsOverdue(dueDate string, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	due, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

// IsExtended reports whether the loan has already been extended beyond the
// initial 14 days.
func IsExtended(durationDays int32) bool {
	return durationDays > domain.DefaultDurationDays
}

// IsMaxExtended reports whether the loan is at the 28-day cap.
func IsMaxExtended(durationDays int32) bool {
	return durationDays >= domain.MaxDurationDays
}

// NextDuration returns the duration after one extension step. Exactly one
// extension is allowed: at or above the cap the extension is denied.
func NextDuration(durationDays int32) (int32, error) {
	if IsMaxExtended(durationDays) {
		return 0, domain.ErrExtensionDenied
	}
	return NormalizeDuration(durationDays) + domain.ExtensionStepDays, nil
}

// Availability derives a medium's status from the active borrowing set. It
// must be recomputed whenever that set changes; no cached flag may go stale
// across a query.
func Availability(mediumID int32, active []domain.Borrowing) domain.MediumStatus {
	for i := range active {
		if active[i].MediumID == mediumID {
			return domain.MediumStatusBorrowed
		}
	}
	return domain.MediumStatusAvailable
}

// Annotate fills the derived lifecycle fields of a borrowing in place.
func Annotate(b *domain.Borrowing, now time.Time) {
	b.DurationDays = NormalizeDuration(b.DurationDays)
	b.DueDate = DueDate(b.LendDate, b.DurationDays)
	b.IsExtended = IsExtended(b.DurationDays)
	b.IsOverdue = IsOverdue(b.DueDate, now)
}
