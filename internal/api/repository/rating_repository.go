package repository

import (
	"context"
	"fmt"

	"ctchen222/Movie-Catalog/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	List(ctx context.Context, filter models.RatingFilter) ([]models.Rating, error)
}

type sqliteRatingRepository struct {
	db *sqlx.DB
}

// NewRatingRepository creates a new SQLite-based RatingRepository.
func NewRatingRepository(db *sqlx.DB) RatingRepository {
	return &sqliteRatingRepository{db: db}
}

func (r *sqliteRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	ctx, span := tracer.Start(ctx, "RatingRepository.Create")
	defer span.End()

	query := `INSERT INTO ratings (user_id, movie_id, rating) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, rating.UserID, rating.MovieID, rating.Rating)
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new rating id: %w", err)
	}
	rating.ID = id
	return nil
}

// List returns ratings matching the filter. Nil filter fields are ignored;
// set fields are ANDed together.
func (r *sqliteRatingRepository) List(ctx context.Context, filter models.RatingFilter) ([]models.Rating, error) {
	ctx, span := tracer.Start(ctx, "RatingRepository.List")
	defer span.End()

	query := `SELECT id, user_id, movie_id, rating FROM ratings WHERE 1=1`
	args := []any{}
	if filter.UserID != nil {
		query += ` AND user_id = ?`
		args = append(args, *filter.UserID)
	}
	if filter.MovieID != nil {
		query += ` AND movie_id = ?`
		args = append(args, *filter.MovieID)
	}

	ratings := []models.Rating{}
	if err := r.db.SelectContext(ctx, &ratings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
