package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `c.id, c.first_name, c.last_name, c.email, c.birth_date,
	a.id, a.street, a.postal_code, a.city`

const customerJoin = `FROM customers c JOIN addresses a ON a.id = c.address_id`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{Address: &domain.Address{}}
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.BirthDate,
		&c.Address.ID, &c.Address.Street, &c.Address.PostalCode, &c.Address.City)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts the owned address and the customer in one transaction.
func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	addrQuery := `INSERT INTO addresses (street, postal_code, city) VALUES ($1, $2, $3) RETURNING id`
	if err := tx.QueryRowContext(ctx, addrQuery, c.Address.Street, c.Address.PostalCode, c.Address.City).Scan(&c.Address.ID); err != nil {
		return err
	}

	custQuery := `INSERT INTO customers (first_name, last_name, email, birth_date, address_id, created_on, updated_on)
	              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	if err := tx.QueryRowContext(ctx, custQuery, c.FirstName, c.LastName, c.Email, c.BirthDate, c.Address.ID, now, now).Scan(&c.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` ` + customerJoin + ` WHERE c.id = $1`
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	custQuery := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, birth_date=$4, updated_on=$5 WHERE id=$6`
	res, err := tx.ExecContext(ctx, custQuery, c.FirstName, c.LastName, c.Email, c.BirthDate, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	if c.Address != nil {
		addrQuery := `UPDATE addresses SET street=$1, postal_code=$2, city=$3
		              WHERE id = (SELECT address_id FROM customers WHERE id = $4)`
		if _, err := tx.ExecContext(ctx, addrQuery, c.Address.Street, c.Address.PostalCode, c.Address.City, c.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes the customer and its owned address.
func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var addressID int32
	err = tx.QueryRowContext(ctx, `SELECT address_id FROM customers WHERE id = $1`, id).Scan(&addressID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, addressID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` ` + customerJoin + ` ORDER BY c.id`
	return r.queryCustomers(ctx, query)
}

func (r *customerRepository) SearchByFamilyName(ctx context.Context, familyName string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` ` + customerJoin + ` WHERE c.last_name ILIKE '%' || $1 || '%' ORDER BY c.id`
	return r.queryCustomers(ctx, query, familyName)
}

func (r *customerRepository) SearchByStreet(ctx context.Context, street string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` ` + customerJoin + ` WHERE a.street ILIKE '%' || $1 || '%' ORDER BY c.id`
	return r.queryCustomers(ctx, query, street)
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}
