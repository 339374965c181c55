package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/repository"
)

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (street, postal_code, city) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Street, a.PostalCode, a.City).Scan(&a.ID)
}

func (r *addressRepository) GetByID(ctx context.Context, id int32) (*domain.Address, error) {
	a := &domain.Address{}
	query := `SELECT id, street, postal_code, city FROM addresses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Street, &a.PostalCode, &a.City)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	query := `UPDATE addresses SET street=$1, postal_code=$2, city=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, a.Street, a.PostalCode, a.City, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	query := `SELECT id, street, postal_code, city FROM addresses ORDER BY id`
	return r.queryAddresses(ctx, query)
}

func (r *addressRepository) SearchByStreet(ctx context.Context, street string) ([]domain.Address, error) {
	query := `SELECT id, street, postal_code, city FROM addresses WHERE street ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryAddresses(ctx, query, street)
}

func (r *addressRepository) SearchByPostalCode(ctx context.Context, postalCode int32) ([]domain.Address, error) {
	query := `SELECT id, street, postal_code, city FROM addresses WHERE postal_code = $1 ORDER BY id`
	return r.queryAddresses(ctx, query, postalCode)
}

func (r *addressRepository) queryAddresses(ctx context.Context, query string, args ...any) ([]domain.Address, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.PostalCode, &a.City); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
