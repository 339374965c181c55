package postgres

import (
	"context"
	"database/sql"

	"bibliothek-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.AddressRepository
	repository.MediumRepository
	repository.BorrowingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		CustomerRepository:  NewCustomerRepository(db),
		AddressRepository:   NewAddressRepository(db),
		MediumRepository:    NewMediumRepository(db),
		BorrowingRepository: NewBorrowingRepository(db),
	}
}

// InitSchema creates the tables when they do not exist yet. The unique
// index on borrowings.medium_id enforces the one-active-borrowing-per-medium
// invariant at the storage layer.
func (s *Store) InitSchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS addresses (
			id SERIAL PRIMARY KEY,
			street TEXT NOT NULL,
			postal_code INTEGER NOT NULL,
			city TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			address_id INTEGER NOT NULL REFERENCES addresses(id),
			created_on TIMESTAMPTZ NOT NULL,
			updated_on TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS media (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			genre TEXT NOT NULL DEFAULT '',
			rating INTEGER NOT NULL DEFAULT 0,
			age_rating INTEGER NOT NULL DEFAULT 0,
			identifier TEXT NOT NULL DEFAULT '',
			shelf_code TEXT NOT NULL DEFAULT '',
			created_on TIMESTAMPTZ NOT NULL,
			updated_on TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS borrowings (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers(id),
			medium_id INTEGER NOT NULL REFERENCES media(id) UNIQUE,
			lend_date TEXT NOT NULL,
			duration_days INTEGER NOT NULL DEFAULT 14,
			created_on TIMESTAMPTZ NOT NULL,
			updated_on TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
