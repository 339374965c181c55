package service

import (
	"context"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/repository"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func (s *addressService) CreateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	if err := domain.ValidateAddress(a); err != nil {
		return nil, err
	}
	if err := s.addressRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *addressService) GetAddress(ctx context.Context, id int32) (*domain.Address, error) {
	return s.addressRepo.GetByID(ctx, id)
}

func (s *addressService) UpdateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	if err := domain.ValidateAddress(a); err != nil {
		return nil, err
	}
	if err := s.addressRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, id int32) error {
	return s.addressRepo.Delete(ctx, id)
}

func (s *addressService) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	return s.addressRepo.List(ctx)
}

func (s *addressService) SearchByStreet(ctx context.Context, street string) ([]domain.Address, error) {
	return s.addressRepo.SearchByStreet(ctx, street)
}

func (s *addressService) SearchByPostalCode(ctx context.Context, postalCode int32) ([]domain.Address, error) {
	return s.addressRepo.SearchByPostalCode(ctx, postalCode)
}
