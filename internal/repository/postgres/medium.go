package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/repository"
)

type mediumRepository struct {
	db *sql.DB
}

func NewMediumRepository(db *sql.DB) repository.MediumRepository {
	return &mediumRepository{db: db}
}

const mediumColumns = `id, title, author, genre, rating, age_rating, identifier, shelf_code`

func (r *mediumRepository) Create(ctx context.Context, m *domain.Medium) error {
	query := `INSERT INTO media (title, author, genre, rating, age_rating, identifier, shelf_code, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, m.Title, m.Author, m.Genre, m.Rating, m.AgeRating, m.Identifier, m.ShelfCode, now, now).Scan(&m.ID)
}

func (r *mediumRepository) GetByID(ctx context.Context, id int32) (*domain.Medium, error) {
	m := &domain.Medium{}
	query := `SELECT ` + mediumColumns + ` FROM media WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.Author, &m.Genre, &m.Rating, &m.AgeRating, &m.Identifier, &m.ShelfCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *mediumRepository) Update(ctx context.Context, m *domain.Medium) error {
	query := `UPDATE media SET title=$1, author=$2, genre=$3, rating=$4, age_rating=$5, identifier=$6, shelf_code=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, m.Title, m.Author, m.Genre, m.Rating, m.AgeRating, m.Identifier, m.ShelfCode, time.Now(), m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mediumRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mediumRepository) List(ctx context.Context) ([]domain.Medium, error) {
	query := `SELECT ` + mediumColumns + ` FROM media ORDER BY id`
	return r.queryMedia(ctx, query)
}

func (r *mediumRepository) SearchByTitle(ctx context.Context, title string) ([]domain.Medium, error) {
	query := `SELECT ` + mediumColumns + ` FROM media WHERE title ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryMedia(ctx, query, title)
}

func (r *mediumRepository) queryMedia(ctx context.Context, query string, args ...any) ([]domain.Medium, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var media []domain.Medium
	for rows.Next() {
		var m domain.Medium
		if err := rows.Scan(&m.ID, &m.Title, &m.Author, &m.Genre, &m.Rating, &m.AgeRating, &m.Identifier, &m.ShelfCode); err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}
