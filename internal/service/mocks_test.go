package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bibliothek-backend/internal/domain"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) SearchByFamilyName(ctx context.Context, familyName string) ([]domain.Customer, error) {
	args := m.Called(ctx, familyName)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) SearchByStreet(ctx context.Context, street string) ([]domain.Customer, error) {
	args := m.Called(ctx, street)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockAddressRepo
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) Create(ctx context.Context, address *domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}
func (m *MockAddressRepo) GetByID(ctx context.Context, id int32) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressRepo) Update(ctx context.Context, address *domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}
func (m *MockAddressRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAddressRepo) List(ctx context.Context) ([]domain.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressRepo) SearchByStreet(ctx context.Context, street string) ([]domain.Address, error) {
	args := m.Called(ctx, street)
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressRepo) SearchByPostalCode(ctx context.Context, postalCode int32) ([]domain.Address, error) {
	args := m.Called(ctx, postalCode)
	return args.Get(0).([]domain.Address), args.Error(1)
}

// MockMediumRepo
type MockMediumRepo struct {
	mock.Mock
}

func (m *MockMediumRepo) Create(ctx context.Context, medium *domain.Medium) error {
	args := m.Called(ctx, medium)
	return args.Error(0)
}
func (m *MockMediumRepo) GetByID(ctx context.Context, id int32) (*domain.Medium, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medium), args.Error(1)
}
func (m *MockMediumRepo) Update(ctx context.Context, medium *domain.Medium) error {
	args := m.Called(ctx, medium)
	return args.Error(0)
}
func (m *MockMediumRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMediumRepo) List(ctx context.Context) ([]domain.Medium, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Medium), args.Error(1)
}
func (m *MockMediumRepo) SearchByTitle(ctx context.Context, title string) ([]domain.Medium, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]domain.Medium), args.Error(1)
}

// MockBorrowingRepo
type MockBorrowingRepo struct {
	mock.Mock
}

func (m *MockBorrowingRepo) Create(ctx context.Context, borrowing *domain.Borrowing) error {
	args := m.Called(ctx, borrowing)
	return args.Error(0)
}
func (m *MockBorrowingRepo) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, mediumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) UpdateDuration(ctx context.Context, id int32, durationDays int32) error {
	args := m.Called(ctx, id, durationDays)
	return args.Error(0)
}
func (m *MockBorrowingRepo) DeleteByMedium(ctx context.Context, mediumID int32) error {
	args := m.Called(ctx, mediumID)
	return args.Error(0)
}
func (m *MockBorrowingRepo) List(ctx context.Context) ([]domain.Borrowing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
