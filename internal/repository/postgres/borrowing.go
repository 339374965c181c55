package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/repository"

	"github.com/lib/pq"
)

type borrowingRepository struct {
	db *sql.DB
}

func NewBorrowingRepository(db *sql.DB) repository.BorrowingRepository {
	return &borrowingRepository{db: db}
}

const borrowingColumns = `id, customer_id, medium_id, lend_date, duration_days`

// Create relies on the unique index on medium_id: a second active borrowing
// for the same medium surfaces as domain.ErrMediumUnavailable.
func (r *borrowingRepository) Create(ctx context.Context, b *domain.Borrowing) error {
	query := `INSERT INTO borrowings (customer_id, medium_id, lend_date, duration_days, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, b.CustomerID, b.MediumID, b.LendDate, b.DurationDays, now, now).Scan(&b.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrMediumUnavailable
	}
	return err
}

func (r *borrowingRepository) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	query := `SELECT ` + borrowingColumns + ` FROM borrowings WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *borrowingRepository) GetByMedium(ctx context.Context, mediumID int32) (*domain.Borrowing, error) {
	query := `SELECT ` + borrowingColumns + ` FROM borrowings WHERE medium_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, mediumID))
}

func (r *borrowingRepository) UpdateDuration(ctx context.Context, id int32, durationDays int32) error {
	query := `UPDATE borrowings SET duration_days=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, durationDays, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *borrowingRepository) DeleteByMedium(ctx context.Context, mediumID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM borrowings WHERE medium_id = $1`, mediumID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *borrowingRepository) List(ctx context.Context) ([]domain.Borrowing, error) {
	query := `SELECT ` + borrowingColumns + ` FROM borrowings ORDER BY id`
	return r.queryBorrowings(ctx, query)
}

func (r *borrowingRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Borrowing, error) {
	query := `SELECT ` + borrowingColumns + ` FROM borrowings WHERE customer_id = $1 ORDER BY id`
	return r.queryBorrowings(ctx, query, customerID)
}

func (r *borrowingRepository) scanOne(row *sql.Row) (*domain.Borrowing, error) {
	b := &domain.Borrowing{}
	err := row.Scan(&b.ID, &b.CustomerID, &b.MediumID, &b.LendDate, &b.DurationDays)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *borrowingRepository) queryBorrowings(ctx context.Context, query string, args ...any) ([]domain.Borrowing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var borrowings []domain.Borrowing
	for rows.Next() {
		var b domain.Borrowing
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.MediumID, &b.LendDate, &b.DurationDays); err != nil {
			return nil, err
		}
		borrowings = append(borrowings, b)
	}
	return borrowings, rows.Err()
}
