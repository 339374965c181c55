package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bibliothek-backend/internal/domain"
)

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) SearchByFamilyName(ctx context.Context, familyName string) ([]domain.Customer, error) {
	args := m.Called(ctx, familyName)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) SearchByStreet(ctx context.Context, street string) ([]domain.Customer, error) {
	args := m.Called(ctx, street)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockAddressService
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressService) GetAddress(ctx context.Context, id int32) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressService) UpdateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressService) DeleteAddress(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAddressService) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressService) SearchByStreet(ctx context.Context, street string) ([]domain.Address, error) {
	args := m.Called(ctx, street)
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressService) SearchByPostalCode(ctx context.Context, postalCode int32) ([]domain.Address, error) {
	args := m.Called(ctx, postalCode)
	return args.Get(0).([]domain.Address), args.Error(1)
}

// MockMediumService
type MockMediumService struct {
	mock.Mock
}

func (m *MockMediumService) AddMedium(ctx context.Context, medium *domain.Medium) (*domain.Medium, error) {
	args := m.Called(ctx, medium)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medium), args.Error(1)
}
func (m *MockMediumService) GetMedium(ctx context.Context, id int32) (*domain.Medium, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medium), args.Error(1)
}
func (m *MockMediumService) UpdateMedium(ctx context.Context, id int32, patch *domain.MediumPatch) (*domain.Medium, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medium), args.Error(1)
}
func (m *MockMediumService) DeleteMedium(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMediumService) ListMedia(ctx context.Context) ([]domain.Medium, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Medium), args.Error(1)
}
func (m *MockMediumService) SearchMedia(ctx context.Context, title string, availableOnly bool) ([]domain.Medium, error) {
	args := m.Called(ctx, title, availableOnly)
	return args.Get(0).([]domain.Medium), args.Error(1)
}

// MockBorrowingService
type MockBorrowingService struct {
	mock.Mock
}

func (m *MockBorrowingService) Checkout(ctx context.Context, customerID, mediumID int32, lendDate string) (*domain.Borrowing, error) {
	args := m.Called(ctx, customerID, mediumID, lendDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) Extend(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, mediumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) Return(ctx context.Context, mediumID int32) error {
	args := m.Called(ctx, mediumID)
	return args.Error(0)
}
func (m *MockBorrowingService) GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, mediumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) ListBorrowings(ctx context.Context) ([]domain.Borrowing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
