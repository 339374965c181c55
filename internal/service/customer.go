package service

import (
	"context"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/repository"
)

type customerService struct {
	customerRepo  repository.CustomerRepository
	borrowingRepo repository.BorrowingRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, borrowingRepo repository.BorrowingRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, borrowingRepo: borrowingRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if err := domain.ValidateCustomer(c); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if err := domain.ValidateCustomer(c); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.customerRepo.GetByID(ctx, c.ID)
}

// DeleteCustomer refuses to remove a customer with active borrowings.
func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	active, err := s.borrowingRepo.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return &domain.ValidationError{Messages: []string{"customer has active borrowings"}}
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) SearchByFamilyName(ctx context.Context, familyName string) ([]domain.Customer, error) {
	return s.customerRepo.SearchByFamilyName(ctx, familyName)
}

func (s *customerService) SearchByStreet(ctx context.Context, street string) ([]domain.Customer, error) {
	return s.customerRepo.SearchByStreet(ctx, street)
}
