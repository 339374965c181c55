package service

import (
	"context"
	"time"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/loan"
	"bibliothek-backend/internal/logger"
	"bibliothek-backend/internal/repository"
)

type borrowingService struct {
	borrowingRepo repository.BorrowingRepository
	customerRepo  repository.CustomerRepository
	mediumRepo    repository.MediumRepository
	now           func() time.Time
}

func NewBorrowingService(
	borrowingRepo repository.BorrowingRepository,
	customerRepo repository.CustomerRepository,
	mediumRepo repository.MediumRepository,
) BorrowingService {
	return &borrowingService{
		borrowingRepo: borrowingRepo,
		customerRepo:  customerRepo,
		mediumRepo:    mediumRepo,
		now:           time.Now,
	}
}

func (s *borrowingService) Checkout(ctx context.Context, customerID, mediumID int32, lendDate string) (*domain.Borrowing, error) {
	b := &domain.Borrowing{CustomerID: customerID, MediumID: mediumID}
	if err := domain.ValidateBorrowing(b); err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.mediumRepo.GetByID(ctx, mediumID); err != nil {
		return nil, err
	}
	if _, err := s.borrowingRepo.GetByMedium(ctx, mediumID); err == nil {
		return nil, domain.ErrMediumUnavailable
	}

	if lendDate == "" {
		lendDate = s.now().Format("2006-01-02")
	}
	b.LendDate = lendDate
	b.DurationDays = domain.DefaultDurationDays

	if err := s.borrowingRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	logger.Info("Borrowing created", "borrowing_id", b.ID, "customer_id", customerID, "medium_id", mediumID)
	return s.hydrate(ctx, b), nil
}

// Extend either fully succeeds or leaves the duration unchanged.
func (s *borrowingService) Extend(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	b, err := s.borrowingRepo.GetByMedium(ctx, mediumID)
	if err != nil {
		return nil, err
	}
	next, err := loan.NextDuration(b.DurationDays)
	if err != nil {
		return nil, err
	}
	if err := s.borrowingRepo.UpdateDuration(ctx, b.ID, next); err != nil {
		return nil, err
	}
	b.DurationDays = next
	logger.Info("Borrowing extended", "borrowing_id", b.ID, "medium_id", mediumID, "duration_days", next)
	return s.hydrate(ctx, b), nil
}

func (s *borrowingService) Return(ctx context.Context, mediumID int32) error {
	if err := s.borrowingRepo.DeleteByMedium(ctx, mediumID); err != nil {
		return err
	}
	logger.Info("Borrowing returned", "medium_id", mediumID)
	return nil
}

func (s *borrowingService) GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	b, err := s.borrowingRepo.GetByMedium(ctx, mediumID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, b), nil
}

func (s *borrowingService) ListBorrowings(ctx context.Context) ([]domain.Borrowing, error) {
	borrowings, err := s.borrowingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range borrowings {
		s.hydrate(ctx, &borrowings[i])
	}
	return borrowings, nil
}

func (s *borrowingService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error) {
	borrowings, err := s.borrowingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range borrowings {
		s.hydrate(ctx, &borrowings[i])
	}
	return borrowings, nil
}

// hydrate resolves the weak customer/medium references and fills the derived
// lifecycle fields. Lookup failures leave the reference empty rather than
// failing the listing.
func (s *borrowingService) hydrate(ctx context.Context, b *domain.Borrowing) *domain.Borrowing {
	if c, err := s.customerRepo.GetByID(ctx, b.CustomerID); err == nil {
		b.Customer = c
	} else {
		logger.Warn("Failed to resolve customer for borrowing", "borrowing_id", b.ID, "customer_id", b.CustomerID, "error", err)
	}
	if m, err := s.mediumRepo.GetByID(ctx, b.MediumID); err == nil {
		m.Status = domain.MediumStatusBorrowed
		b.Medium = m
	} else {
		logger.Warn("Failed to resolve medium for borrowing", "borrowing_id", b.ID, "medium_id", b.MediumID, "error", err)
	}
	loan.Annotate(b, s.now())
	return b
}
