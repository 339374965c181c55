package loan

import (
	"testing"
	"time"

	"bibliothek-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDueDate(t *testing.T) {
	t.Run("14 day loan", func(t *testing.T) {
		assert.Equal(t, "2024-01-15", DueDate("2024-01-01", 14))
	})

	t.Run("28 day loan", func(t *testing.T) {
		assert.Equal(t, "2024-01-29", DueDate("2024-01-01", 28))
	})

	t.Run("Crosses month boundary", func(t *testing.T) {
		assert.Equal(t, "2024-02-03", DueDate("2024-01-20", 14))
	})

	t.Run("Crosses year boundary", func(t *testing.T) {
		assert.Equal(t, "2025-01-03", DueDate("2024-12-20", 14))
	})

	t.Run("Leap day", func(t *testing.T) {
		assert.Equal(t, "2024-02-29", DueDate("2024-02-15", 14))
	})

	t.Run("Missing lend date", func(t *testing.T) {
		assert.Equal(t, "", DueDate("", 14))
	})

	t.Run("Unparseable lend date", func(t *testing.T) {
		assert.Equal(t, "", DueDate("15.01.2024", 14))
	})

	t.Run("Non-positive duration defaults to 14", func(t *testing.T) {
		assert.Equal(t, "2024-01-15", DueDate("2024-01-01", 0))
		assert.Equal(t, "2024-01-15", DueDate("2024-01-01", -3))
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := DueDate("2024-01-01", 14)
		second := DueDate("2024-01-01", 14)
		assert.Equal(t, first, second)
	})
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("Due date in the past", func(t *testing.T) {
		assert.True(t, IsOverdue("2024-01-14", now))
	})

	t.Run("Due today is not overdue", func(t *testing.T) {
		assert.False(t, IsOverdue("2024-01-15", now))
	})

	t.Run("Due date in the future", func(t *testing.T) {
		assert.False(t, IsOverdue("2024-01-16", now))
	})

	t.Run("Empty due date", func(t *testing.T) {
		assert.False(t, IsOverdue("", now))
	})

	t.Run("Invalid due date", func(t *testing.T) {
		assert.False(t, IsOverdue("not-a-date", now))
	})
}

func TestExtensionFlags(t *testing.T) {
	tests := []struct {
		duration    int32
		extended    bool
		maxExtended bool
	}{
		{14, false, false},
		{15, true, false},
		{27, true, false},
		{28, true, true},
		{42, true, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.extended, IsExtended(tt.duration), "IsExtended(%d)", tt.duration)
		assert.Equal(t, tt.maxExtended, IsMaxExtended(tt.duration), "IsMaxExtended(%d)", tt.duration)
	}
}

func TestNextDuration(t *testing.T) {
	t.Run("Initial loan extends to 28", func(t *testing.T) {
		next, err := NextDuration(14)
		assert.NoError(t, err)
		assert.Equal(t, int32(28), next)
	})

	t.Run("At cap", func(t *testing.T) {
		_, err := NextDuration(28)
		assert.ErrorIs(t, err, domain.ErrExtensionDenied)
	})

	t.Run("Over cap", func(t *testing.T) {
		_, err := NextDuration(35)
		assert.ErrorIs(t, err, domain.ErrExtensionDenied)
	})

	t.Run("Defaulted duration extends to 28", func(t *testing.T) {
		next, err := NextDuration(0)
		assert.NoError(t, err)
		assert.Equal(t, int32(28), next)
	})
}

func TestAvailability(t *testing.T) {
	var active []domain.Borrowing

	assert.Equal(t, domain.MediumStatusAvailable, Availability(5, active))

	active = append(active, domain.Borrowing{ID: 1, CustomerID: 2, MediumID: 5})
	assert.Equal(t, domain.MediumStatusBorrowed, Availability(5, active))

	active = active[:0]
	assert.Equal(t, domain.MediumStatusAvailable, Availability(5, active))
}

func TestAnnotate(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Overdue extended borrowing", func(t *testing.T) {
		b := domain.Borrowing{LendDate: "2024-01-01", DurationDays: 28}
		Annotate(&b, now)
		assert.Equal(t, "2024-01-29", b.DueDate)
		assert.True(t, b.IsExtended)
		assert.True(t, b.IsOverdue)
	})

	t.Run("Missing lend date degrades safely", func(t *testing.T) {
		b := domain.Borrowing{DurationDays: 0}
		Annotate(&b, now)
		assert.Equal(t, "", b.DueDate)
		assert.Equal(t, int32(14), b.DurationDays)
		assert.False(t, b.IsOverdue)
		assert.False(t, b.IsExtended)
	})
}
