package repository

import (
	"context"

	"bibliothek-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Customer, error)
	SearchByFamilyName(ctx context.Context, familyName string) ([]domain.Customer, error)
	SearchByStreet(ctx context.Context, street string) ([]domain.Customer, error)
}

type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id int32) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Address, error)
	SearchByStreet(ctx context.Context, street string) ([]domain.Address, error)
	SearchByPostalCode(ctx context.Context, postalCode int32) ([]domain.Address, error)
}

type MediumRepository interface {
	Create(ctx context.Context, medium *domain.Medium) error
	GetByID(ctx context.Context, id int32) (*domain.Medium, error)
	Update(ctx context.Context, medium *domain.Medium) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Medium, error)
	SearchByTitle(ctx context.Context, title string) ([]domain.Medium, error)
}

type BorrowingRepository interface {
	Create(ctx context.Context, borrowing *domain.Borrowing) error
	GetByID(ctx context.Context, id int32) (*domain.Borrowing, error)
	// GetByMedium returns the active borrowing for a medium, or
	// domain.ErrNotFound when the medium is available.
	GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error)
	UpdateDuration(ctx context.Context, id int32, durationDays int32) error
	DeleteByMedium(ctx context.Context, mediumID int32) error
	List(ctx context.Context) ([]domain.Borrowing, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error)
}
