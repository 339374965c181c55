package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"bibliothek-backend/internal/config"
	"bibliothek-backend/internal/domain"
)

type mockBorrowingService struct {
	mock.Mock
}

func (m *mockBorrowingService) Checkout(ctx context.Context, customerID, mediumID int32, lendDate string) (*domain.Borrowing, error) {
	args := m.Called(ctx, customerID, mediumID, lendDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *mockBorrowingService) Extend(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, mediumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *mockBorrowingService) Return(ctx context.Context, mediumID int32) error {
	args := m.Called(ctx, mediumID)
	return args.Error(0)
}
func (m *mockBorrowingService) GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, mediumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *mockBorrowingService) ListBorrowings(ctx context.Context) ([]domain.Borrowing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
func (m *mockBorrowingService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendDueSoonReminder(ctx context.Context, email, name, title, dueDate string) error {
	args := m.Called(ctx, email, name, title, dueDate)
	return args.Error(0)
}
func (m *mockEmailService) SendOverdueNotice(ctx context.Context, email, name, title, dueDate string) error {
	args := m.Called(ctx, email, name, title, dueDate)
	return args.Error(0)
}

func borrowingFixture(lendDate string, durationDays int32, now time.Time) domain.Borrowing {
	lend, _ := time.Parse("2006-01-02", lendDate)
	due := lend.AddDate(0, 0, int(durationDays))
	return domain.Borrowing{
		ID:           1,
		CustomerID:   3,
		MediumID:     7,
		LendDate:     lendDate,
		DurationDays: durationDays,
		DueDate:      due.Format("2006-01-02"),
		IsOverdue:    due.Before(now.Truncate(24 * time.Hour)),
		Customer:     &domain.Customer{ID: 3, FirstName: "Erika", LastName: "Muster", Email: "erika@example.org"},
		Medium:       &domain.Medium{ID: 7, Title: "Der Prozess"},
	}
}

func TestSendOverdueNotices(t *testing.T) {
	borrowingSvc := new(mockBorrowingService)
	emailSvc := new(mockEmailService)
	now := time.Now().UTC()

	overdue := borrowingFixture(now.AddDate(0, 0, -20).Format("2006-01-02"), 14, now)
	current := borrowingFixture(now.Format("2006-01-02"), 14, now)
	current.ID = 2

	borrowingSvc.On("ListBorrowings", mock.Anything).Return([]domain.Borrowing{overdue, current}, nil)
	emailSvc.On("SendOverdueNotice", mock.Anything, "erika@example.org", "Erika Muster", "Der Prozess", overdue.DueDate).Return(nil)

	jr := NewJobRunner(nil, nil, &Services{Email: emailSvc, Borrowing: borrowingSvc}, &config.Config{})
	jr.SendOverdueNotices()

	emailSvc.AssertNumberOfCalls(t, "SendOverdueNotice", 1)
}

func TestSendDueSoonReminders(t *testing.T) {
	borrowingSvc := new(mockBorrowingService)
	emailSvc := new(mockEmailService)
	now := time.Now().UTC()

	// due tomorrow, inside the 2-day window
	dueSoon := borrowingFixture(now.AddDate(0, 0, -13).Format("2006-01-02"), 14, now)
	// due in 10 days, outside the window
	notYet := borrowingFixture(now.AddDate(0, 0, -4).Format("2006-01-02"), 14, now)
	notYet.ID = 2
	// already overdue, handled by the overdue notice instead
	overdue := borrowingFixture(now.AddDate(0, 0, -20).Format("2006-01-02"), 14, now)
	overdue.ID = 3
	overdue.IsOverdue = true

	borrowingSvc.On("ListBorrowings", mock.Anything).Return([]domain.Borrowing{dueSoon, notYet, overdue}, nil)
	emailSvc.On("SendDueSoonReminder", mock.Anything, "erika@example.org", "Erika Muster", "Der Prozess", dueSoon.DueDate).Return(nil)

	cfg := &config.Config{}
	cfg.Loan.ReminderDays = 2

	jr := NewJobRunner(nil, nil, &Services{Email: emailSvc, Borrowing: borrowingSvc}, cfg)
	jr.SendDueSoonReminders()

	emailSvc.AssertNumberOfCalls(t, "SendDueSoonReminder", 1)
	emailSvc.AssertNotCalled(t, "SendOverdueNotice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
