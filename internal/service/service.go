package service

import (
	"context"

	"bibliothek-backend/internal/domain"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int32) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchByFamilyName(ctx context.Context, familyName string) ([]domain.Customer, error)
	SearchByStreet(ctx context.Context, street string) ([]domain.Customer, error)
}

type AddressService interface {
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	GetAddress(ctx context.Context, id int32) (*domain.Address, error)
	UpdateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id int32) error
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	SearchByStreet(ctx context.Context, street string) ([]domain.Address, error)
	SearchByPostalCode(ctx context.Context, postalCode int32) ([]domain.Address, error)
}

type MediumService interface {
	AddMedium(ctx context.Context, medium *domain.Medium) (*domain.Medium, error)
	GetMedium(ctx context.Context, id int32) (*domain.Medium, error)
	UpdateMedium(ctx context.Context, id int32, patch *domain.MediumPatch) (*domain.Medium, error)
	DeleteMedium(ctx context.Context, id int32) error
	ListMedia(ctx context.Context) ([]domain.Medium, error)
	SearchMedia(ctx context.Context, title string, availableOnly bool) ([]domain.Medium, error)
}

type BorrowingService interface {
	// Checkout creates a borrowing for an available medium. The duration
	// defaults to 14 days.
	Checkout(ctx context.Context, customerID, mediumID int32, lendDate string) (*domain.Borrowing, error)
	// Extend increases the duration by one 14-day step. At the 28-day cap it
	// fails with domain.ErrExtensionDenied and the duration is unchanged.
	Extend(ctx context.Context, mediumID int32) (*domain.Borrowing, error)
	// Return deletes the active borrowing, making the medium available.
	Return(ctx context.Context, mediumID int32) error
	GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error)
	ListBorrowings(ctx context.Context) ([]domain.Borrowing, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error)
}

type EmailService interface {
	SendDueSoonReminder(ctx context.Context, email, name, title, dueDate string) error
	SendOverdueNotice(ctx context.Context, email, name, title, dueDate string) error
}
